package domain

const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000

	ShoppingListHeader   = "Shopping list:"
	ShoppingListFilename = "shopping_list.txt"
)

var (
	MessageSuccessGetRecipes          = "success get recipes"
	MessageSuccessGetRecipeDetail     = "success get recipe detail"
	MessageSuccessCreateRecipe        = "recipe created successfully"
	MessageSuccessUpdateRecipe        = "recipe updated successfully"
	MessageSuccessDeleteRecipe        = "recipe deleted successfully"
	MessageSuccessAddFavorite         = "recipe added to favorites"
	MessageSuccessRemoveFavorite      = "recipe removed from favorites"
	MessageSuccessAddShoppingCart     = "recipe added to shopping cart"
	MessageSuccessRemoveShoppingCart  = "recipe removed from shopping cart"
	MessageSuccessGetShortLink        = "success get short link"
	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddShoppingCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart   = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingCart = "failed to download shopping list"
	MessageFailedGetShortLink         = "failed to get short link"
	MessageFailedResolveShortLink     = "failed to resolve short link"

	ErrRecipeNotFound        = NewError(ErrNotFound, "recipe not found")
	ErrNotRecipeAuthor       = NewError(ErrPermissionDenied, "only the author can change this recipe")
	ErrAlreadyFavorited      = NewError(ErrConflict, "recipe is already in favorites")
	ErrNotFavorited          = NewError(ErrNotLinked, "recipe is not in favorites")
	ErrAlreadyInShoppingCart = NewError(ErrConflict, "recipe is already in shopping cart")
	ErrNotInShoppingCart     = NewError(ErrNotLinked, "recipe is not in shopping cart")
	ErrInvalidShortLink      = NewError(ErrValidation, "invalid short link")
)

type (
	IngredientAmountRequest struct {
		ID     uint `json:"id" validate:"required"`
		Amount int  `json:"amount" validate:"required,min=1,max=32000"`
	}

	CreateRecipeRequest struct {
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,min=1,unique=ID,dive"`
		Tags        []uint                    `json:"tags" validate:"required,min=1,unique,dive,required"`
		Image       string                    `json:"image" validate:"required"`
		Name        string                    `json:"name" validate:"required,max=256"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1,max=32000"`
	}

	// UpdateRecipeRequest is a partial update, except that tags and
	// ingredients must always be sent.
	UpdateRecipeRequest struct {
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,min=1,unique=ID,dive"`
		Tags        []uint                    `json:"tags" validate:"required,min=1,unique,dive,required"`
		Image       *string                   `json:"image" validate:"omitempty,min=1"`
		Name        *string                   `json:"name" validate:"omitempty,min=1,max=256"`
		Text        *string                   `json:"text" validate:"omitempty,min=1"`
		CookingTime *int                      `json:"cooking_time" validate:"omitempty,min=1,max=32000"`
	}

	RecipeFilter struct {
		Tags             []string
		AuthorID         *uint
		IsFavorited      *bool
		IsInShoppingCart *bool
	}

	RecipeIngredientResponse struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               uint                       `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
	}

	RecipeShort struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		TotalAmount     int    `json:"total_amount"`
	}

	ShortLinkResponse struct {
		ShortLink string `json:"short-link"`
	}
)
