package presenters

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/utils/logger"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Response struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    any                `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  domain.FieldErrors `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
		var fields domain.FieldErrors
		if errors.As(err, &fields) {
			res.Errors = fields
		}
	}
	return c.Status(code).JSON(res)
}

// HandleError picks the status code from the error kind. Unknown errors are
// logged and reported as a bare 500.
func HandleError(c *fiber.Ctx, message string, err error) error {
	code := StatusCode(err)
	if code == fiber.StatusInternalServerError {
		logger.Error(message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return ErrorResponse(c, code, message, nil)
	}
	return ErrorResponse(c, code, message, err)
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNotLinked):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func Paginated(results any, count int64, pagination domain.Pagination) fiber.Map {
	return fiber.Map{
		"count":   count,
		"results": results,
		"pagination": fiber.Map{
			"page":        pagination.Page,
			"limit":       pagination.Limit,
			"total":       count,
			"total_pages": (count + int64(pagination.Limit) - 1) / int64(pagination.Limit),
		},
	}
}
