package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/api/presenters"
	"Foodgram-Backend/internal/middleware"
	"Foodgram-Backend/pkg/subscription"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{subscriptionService: subscriptionService}
}

// recipesLimit returns nil when the parameter is absent or not a
// non-negative integer, meaning no limit.
func recipesLimit(c *fiber.Ctx) *int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return nil
	}
	return &limit
}

func (h *subscriptionHandler) Subscribe(c *fiber.Ctx) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedSubscribe, err)
	}

	res, err := h.subscriptionService.Follow(c.Context(), middleware.UserID(c), authorID, recipesLimit(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *subscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnsubscribe, err)
	}

	if err := h.subscriptionService.Unfollow(c.Context(), middleware.UserID(c), authorID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnsubscribe, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *subscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	pagination := parsePagination(c)

	res, count, err := h.subscriptionService.ListSubscriptions(c.Context(), middleware.UserID(c), pagination, recipesLimit(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetSubscriptions, err)
	}

	return presenters.SuccessResponse(c, presenters.Paginated(res, count, pagination), fiber.StatusOK, domain.MessageSuccessGetSubscriptions)
}
