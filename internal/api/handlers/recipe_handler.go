package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/api/presenters"
	"Foodgram-Backend/internal/middleware"
	"Foodgram-Backend/internal/utils/metrics"
	"Foodgram-Backend/pkg/recipe"
	"Foodgram-Backend/pkg/relation"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetShortLink(c *fiber.Ctx) error
		RedirectShortLink(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService       recipe.RecipeService
		favoriteService     relation.RelationService
		shoppingCartService relation.RelationService
		baseURL             string
	}
)

// NewRecipeHandler builds absolute links from baseURL, or from the request when it is empty.
func NewRecipeHandler(
	recipeService recipe.RecipeService,
	favoriteService relation.RelationService,
	shoppingCartService relation.RelationService,
	baseURL string,
) RecipeHandler {
	return &recipeHandler{
		recipeService:       recipeService,
		favoriteService:     favoriteService,
		shoppingCartService: shoppingCartService,
		baseURL:             strings.TrimSuffix(baseURL, "/"),
	}
}

func (h *recipeHandler) base(c *fiber.Ctx) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return c.BaseURL()
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	filter, err := parseRecipeFilter(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	pagination := parsePagination(c)

	res, count, err := h.recipeService.GetRecipes(c.Context(), middleware.UserID(c), filter, pagination)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, presenters.Paginated(res, count, pagination), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func parseRecipeFilter(c *fiber.Ctx) (domain.RecipeFilter, error) {
	var filter domain.RecipeFilter

	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.Tags = append(filter.Tags, string(slug))
	}

	if raw := c.Query("author"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fieldError("author", "enter a whole number")
		}
		authorID := uint(id)
		filter.AuthorID = &authorID
	}

	flags := []struct {
		name string
		dst  **bool
	}{
		{"is_favorited", &filter.IsFavorited},
		{"is_in_shopping_cart", &filter.IsInShoppingCart},
	}
	for _, flag := range flags {
		raw := c.Query(flag.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fieldError(flag.name, "enter 0 or 1")
		}
		*flag.dst = &value
	}

	return filter, nil
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

// CreateRecipe leaves validation to the service, it also checks tags and
// ingredients against storage.
func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, middleware.UserID(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req, middleware.UserID(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id, middleware.UserID(c)); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteRecipe, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) GetShortLink(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetShortLink, err)
	}

	token, err := h.recipeService.GetShortLinkToken(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetShortLink, err)
	}

	return presenters.SuccessResponse(c, domain.ShortLinkResponse{
		ShortLink: h.base(c) + "/s/" + token,
	}, fiber.StatusOK, domain.MessageSuccessGetShortLink)
}

func (h *recipeHandler) RedirectShortLink(c *fiber.Ctx) error {
	id, err := h.recipeService.ResolveShortLink(c.Context(), c.Params("token"))
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, domain.ErrValidation):
			outcome = "invalid"
		case errors.Is(err, domain.ErrNotFound):
			outcome = "not_found"
		}
		metrics.ShortLinkRedirects.WithLabelValues(outcome).Inc()
		return presenters.HandleError(c, domain.MessageFailedResolveShortLink, err)
	}

	metrics.ShortLinkRedirects.WithLabelValues("ok").Inc()
	return c.Redirect(h.base(c)+"/recipes/"+strconv.FormatUint(uint64(id), 10), fiber.StatusMovedPermanently)
}

func (h *recipeHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	list, err := h.recipeService.GetShoppingList(c.Context(), middleware.UserID(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDownloadShoppingCart, err)
	}

	metrics.ShoppingListDownloads.Inc()
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+domain.ShoppingListFilename+`"`)
	return c.SendString(list)
}

func (h *recipeHandler) AddFavorite(c *fiber.Ctx) error {
	return h.addRelation(c, h.favoriteService, "favorite", domain.MessageSuccessAddFavorite, domain.MessageFailedAddFavorite)
}

func (h *recipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.removeRelation(c, h.favoriteService, "favorite", domain.MessageFailedRemoveFavorite)
}

func (h *recipeHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.addRelation(c, h.shoppingCartService, "shopping_cart", domain.MessageSuccessAddShoppingCart, domain.MessageFailedAddShoppingCart)
}

func (h *recipeHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.removeRelation(c, h.shoppingCartService, "shopping_cart", domain.MessageFailedRemoveShoppingCart)
}

func (h *recipeHandler) addRelation(c *fiber.Ctx, svc relation.RelationService, name, success, failed string) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, failed, err)
	}

	res, err := svc.Add(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return presenters.HandleError(c, failed, err)
	}

	metrics.RecordRelationChange(name, "add")
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, success)
}

func (h *recipeHandler) removeRelation(c *fiber.Ctx, svc relation.RelationService, name, failed string) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, failed, err)
	}

	if err := svc.Remove(c.Context(), middleware.UserID(c), id); err != nil {
		return presenters.HandleError(c, failed, err)
	}

	metrics.RecordRelationChange(name, "remove")
	return c.SendStatus(fiber.StatusNoContent)
}
