package presenters

import (
	"Foodgram-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: domain.ErrRecipeNotFound, want: fiber.StatusNotFound},
		{err: domain.ErrAlreadyFavorited, want: fiber.StatusBadRequest},
		{err: domain.ErrNotSubscribed, want: fiber.StatusBadRequest},
		{err: domain.ErrInvalidShortLink, want: fiber.StatusBadRequest},
		{err: domain.FieldErrors{"name": {"this field is required"}}, want: fiber.StatusBadRequest},
		{err: domain.ErrNotRecipeAuthor, want: fiber.StatusForbidden},
		{err: domain.ErrTokenExpired, want: fiber.StatusUnauthorized},
		{err: fmt.Errorf("saving: %w", domain.ErrTagNotFound), want: fiber.StatusNotFound},
		{err: errors.New("connection refused"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	app := fiber.New()
	app.Get("/fields", func(c *fiber.Ctx) error {
		return HandleError(c, "failed", domain.FieldErrors{"tags": {"items must not repeat"}})
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return HandleError(c, "failed", errors.New("pq: password authentication failed"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fields", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, []string{"items must not repeat"}, body.Errors["tags"])

	resp, err = app.Test(httptest.NewRequest("GET", "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestPaginated(t *testing.T) {
	page := Paginated([]int{1, 2}, 7, domain.Pagination{Page: 2, Limit: 3})
	assert.Equal(t, int64(7), page["count"])
	assert.Equal(t, int64(3), page["pagination"].(fiber.Map)["total_pages"])
}
