// Package seed loads the tag and ingredient catalog from JSON files.
package seed

import (
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 500

// Load inserts every row of tags.json and ingredients.json found in dir.
// Rows that already exist are left alone, so it is safe to run twice.
func Load(ctx context.Context, db *gorm.DB, dir string) error {
	if err := load[entities.Tag](ctx, db, dir, "tags"); err != nil {
		return err
	}
	return load[entities.Ingredient](ctx, db, dir, "ingredients")
}

func load[T any](ctx context.Context, db *gorm.DB, dir, name string) error {
	path := filepath.Join(dir, name+".json")

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("seed file not found, skipping", zap.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var rows []T
	if err := json.Unmarshal(file, &rows); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil
	}

	logger.Info("loading seed file", zap.String("path", path), zap.Int("rows", len(rows)))
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, batchSize)
	if res.Error != nil {
		return fmt.Errorf("insert %s: %w", name, res.Error)
	}

	logger.Info("seed file loaded", zap.String("path", path), zap.Int64("inserted", res.RowsAffected))
	return nil
}
