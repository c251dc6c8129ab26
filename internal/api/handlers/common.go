package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/utils"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

func parsePagination(c *fiber.Ctx) domain.Pagination {
	page, err := strconv.Atoi(c.Query("page", "1"))
	switch {
	case errors.Is(err, strconv.ErrRange) && page > 0, err == nil && page > domain.MaxPage:
		// past the last page; keeps Offset from overflowing
		page = domain.MaxPage
	case err != nil || page < 1:
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	return domain.Pagination{Page: page, Limit: limit}
}

func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return utils.ValidationErrors(err)
	}
	return nil
}

func fieldError(field, msg string) error {
	fields := domain.FieldErrors{}
	fields.Add(field, msg)
	return fields
}
