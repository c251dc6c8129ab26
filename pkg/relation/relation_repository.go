// Package relation implements the per-user recipe sets (favorites, shopping
// cart) once, over any entity shaped like entities.UserRecipe.
package relation

import (
	"Foodgram-Backend/entities"
	"context"

	"gorm.io/gorm"
)

// Binder is satisfied by pointers to entities embedding entities.UserRecipe.
type Binder[T any] interface {
	*T
	Bind(userID, recipeID uint)
}

type (
	Repository interface {
		Transaction(ctx context.Context, fn func(repo Repository) error) error
		GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		Exists(ctx context.Context, userID, recipeID uint) (bool, error)
		Create(ctx context.Context, userID, recipeID uint) error
		Delete(ctx context.Context, userID, recipeID uint) (int64, error)
	}

	repository[T any, PT Binder[T]] struct {
		db *gorm.DB
	}
)

func NewRepository[T any, PT Binder[T]](db *gorm.DB) Repository {
	return &repository[T, PT]{db: db}
}

func (r *repository[T, PT]) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository[T, PT]{db: tx})
	})
}

func (r *repository[T, PT]) GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("id", "name", "image", "cooking_time").
		First(&recipe, recipeID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *repository[T, PT]) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository[T, PT]) Create(ctx context.Context, userID, recipeID uint) error {
	row := PT(new(T))
	row.Bind(userID, recipeID)
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository[T, PT]) Delete(ctx context.Context, userID, recipeID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(PT(new(T)))
	return res.RowsAffected, res.Error
}
