package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/user"
	"context"

	"gorm.io/gorm"
)

const (
	isFavoritedSQL      = "EXISTS (SELECT 1 FROM favorites WHERE favorites.recipe_id = recipes.id AND favorites.user_id = ?)"
	isInShoppingCartSQL = "EXISTS (SELECT 1 FROM shopping_carts WHERE shopping_carts.recipe_id = recipes.id AND shopping_carts.user_id = ?)"
	hasTagSlugSQL       = "EXISTS (SELECT 1 FROM recipe_tags JOIN tags ON tags.id = recipe_tags.tag_id WHERE recipe_tags.recipe_id = recipes.id AND tags.slug IN ?)"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, viewerID uint, filter domain.RecipeFilter, pagination domain.Pagination) ([]*entities.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id uint, viewerID uint) (*entities.Recipe, error)
		GetRecipeByIDBasic(ctx context.Context, id uint) (*entities.Recipe, error)
		GetTagsByIDs(ctx context.Context, ids []uint) ([]*entities.Tag, error)
		GetTagsBySlugs(ctx context.Context, slugs []string) ([]*entities.Tag, error)
		GetIngredientsByIDs(ctx context.Context, ids []uint) ([]*entities.Ingredient, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tagIDs []uint, ingredients []*entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetShoppingList(ctx context.Context, userID uint) ([]domain.ShoppingListItem, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// withViewerFlags selects is_favorited and is_in_shopping_cart for viewerID.
func withViewerFlags(viewerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(
			"recipes.*, "+isFavoritedSQL+" AS is_favorited, "+isInShoppingCartSQL+" AS is_in_shopping_cart",
			viewerID, viewerID,
		)
	}
}

func withDetails(viewerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Author", user.SelectIsSubscribed(viewerID)).
			Preload("Tags", func(db *gorm.DB) *gorm.DB {
				return db.Order("tags.name")
			}).
			Preload("RecipeIngredients", func(db *gorm.DB) *gorm.DB {
				return db.Order("recipe_ingredients.id")
			}).
			Preload("RecipeIngredients.Ingredient")
	}
}

func withFilter(viewerID uint, filter domain.RecipeFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(filter.Tags) > 0 {
			db = db.Where(hasTagSlugSQL, filter.Tags)
		}
		if filter.AuthorID != nil {
			db = db.Where("recipes.author_id = ?", *filter.AuthorID)
		}
		// per-user filters mean nothing to anonymous callers
		if viewerID == 0 {
			return db
		}
		if filter.IsFavorited != nil {
			db = db.Where(negate(isFavoritedSQL, !*filter.IsFavorited), viewerID)
		}
		if filter.IsInShoppingCart != nil {
			db = db.Where(negate(isInShoppingCartSQL, !*filter.IsInShoppingCart), viewerID)
		}
		return db
	}
}

func negate(cond string, not bool) string {
	if not {
		return "NOT " + cond
	}
	return cond
}

func (r *recipeRepository) GetRecipes(ctx context.Context, viewerID uint, filter domain.RecipeFilter, pagination domain.Pagination) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Scopes(withFilter(viewerID, filter)).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Scopes(withFilter(viewerID, filter), withViewerFlags(viewerID), withDetails(viewerID)).
		Order("is_favorited DESC").
		Order("is_in_shopping_cart DESC").
		Order("recipes.created_at DESC").
		Order("recipes.id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint, viewerID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withViewerFlags(viewerID), withDetails(viewerID)).
		Where("recipes.id = ?", id).
		Take(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeByIDBasic loads only the recipe row, for ownership checks.
func (r *recipeRepository) GetRecipeByIDBasic(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetTagsByIDs(ctx context.Context, ids []uint) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetTagsBySlugs(ctx context.Context, slugs []string) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateRecipe inserts the recipe with its ingredient rows and tag links.
// Tags must already exist.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Tags.*").Create(recipe).Error
}

// UpdateRecipe writes the scalar fields and replaces the tag and ingredient sets.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tagIDs []uint, ingredients []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
		}).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}
		links := make([]map[string]any, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, map[string]any{"recipe_id": recipe.ID, "tag_id": tagID})
		}
		if len(links) > 0 {
			if err := tx.Table("recipe_tags").Create(links).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for _, ri := range ingredients {
			ri.RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		for _, model := range []any{&entities.RecipeIngredient{}, &entities.Favorite{}, &entities.ShoppingCart{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&entities.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetShoppingList sums the ingredients of every recipe in the user's cart.
func (r *recipeRepository) GetShoppingList(ctx context.Context, userID uint) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Table("shopping_carts").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_carts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
