package relation

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/pkg/mapper"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RelationService interface {
		Add(ctx context.Context, userID, recipeID uint) (domain.RecipeShort, error)
		Remove(ctx context.Context, userID, recipeID uint) error
	}

	// Errors are returned when the pair already exists or is missing.
	Errors struct {
		AlreadyLinked error
		NotLinked     error
	}

	relationService struct {
		repo Repository
		errs Errors
	}
)

func NewRelationService(repo Repository, errs Errors) RelationService {
	return &relationService{
		repo: repo,
		errs: errs,
	}
}

func (s *relationService) Add(ctx context.Context, userID, recipeID uint) (domain.RecipeShort, error) {
	var res domain.RecipeShort
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		recipe, err := repo.GetRecipe(ctx, recipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		exists, err := repo.Exists(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		if exists {
			return s.errs.AlreadyLinked
		}

		if err := repo.Create(ctx, userID, recipeID); err != nil {
			// lost the race against a concurrent insert of the same pair
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.errs.AlreadyLinked
			}
			return err
		}

		res = mapper.RecipeEntityToShort(recipe)
		return nil
	})
	if err != nil {
		return domain.RecipeShort{}, err
	}
	return res, nil
}

func (s *relationService) Remove(ctx context.Context, userID, recipeID uint) error {
	return s.repo.Transaction(ctx, func(repo Repository) error {
		if _, err := repo.GetRecipe(ctx, recipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		deleted, err := repo.Delete(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return s.errs.NotLinked
		}
		return nil
	})
}

func NewFavoriteErrors() Errors {
	return Errors{AlreadyLinked: domain.ErrAlreadyFavorited, NotLinked: domain.ErrNotFavorited}
}

func NewShoppingCartErrors() Errors {
	return Errors{AlreadyLinked: domain.ErrAlreadyInShoppingCart, NotLinked: domain.ErrNotInShoppingCart}
}
