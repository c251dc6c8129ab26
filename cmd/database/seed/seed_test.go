package seed

import (
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/testutil"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()
	writeFile(t, dir, "tags.json", `[{"name":"Breakfast","slug":"breakfast"},{"name":"Dinner","slug":"dinner"}]`)
	writeFile(t, dir, "ingredients.json", `[{"name":"flour","measurement_unit":"g"},{"name":"milk","measurement_unit":"ml"}]`)

	require.NoError(t, Load(context.Background(), db, dir))
	// second run hits the unique indexes and inserts nothing
	require.NoError(t, Load(context.Background(), db, dir))

	var tags, ingredients int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	assert.Equal(t, int64(2), tags)
	assert.Equal(t, int64(2), ingredients)

	var milk entities.Ingredient
	require.NoError(t, db.Where("name = ?", "milk").First(&milk).Error)
	assert.Equal(t, "ml", milk.MeasurementUnit)
}

func TestLoadSkipsMissingFile(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()
	writeFile(t, dir, "ingredients.json", `[{"name":"salt","measurement_unit":"g"}]`)

	require.NoError(t, Load(context.Background(), db, dir))

	var ingredients int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	assert.Equal(t, int64(1), ingredients)
}

func TestLoadMalformedJSON(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()
	writeFile(t, dir, "tags.json", `[{"name":`)

	err := Load(context.Background(), db, dir)
	assert.ErrorContains(t, err, "parse")
}
