package mapper

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
)

func TagEntityToResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}

func IngredientEntityToResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

// UserEntityToResponse expects IsSubscribed to be selected for the current viewer.
func UserEntityToResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: user.IsSubscribed,
		Avatar:       user.Avatar,
	}
}

func RecipeEntityToShort(recipe *entities.Recipe) domain.RecipeShort {
	return domain.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

func RecipeEntityToResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID,
		Tags:             make([]domain.TagResponse, 0, len(recipe.Tags)),
		Ingredients:      make([]domain.RecipeIngredientResponse, 0, len(recipe.RecipeIngredients)),
		IsFavorited:      recipe.IsFavorited,
		IsInShoppingCart: recipe.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
	if recipe.Author != nil {
		res.Author = UserEntityToResponse(recipe.Author)
	}
	for _, tag := range recipe.Tags {
		res.Tags = append(res.Tags, TagEntityToResponse(tag))
	}
	for _, ri := range recipe.RecipeIngredients {
		item := domain.RecipeIngredientResponse{
			ID:     ri.IngredientID,
			Amount: ri.Amount,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
			item.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	return res
}
