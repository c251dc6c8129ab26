package handlers

import (
	"Foodgram-Backend/domain"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes fn inside a real request so fiber fills the context. fn runs
// on the server goroutine, so callers capture results and assert afterwards.
func run(t *testing.T, target string, fn func(c *fiber.Ctx) error) {
	t.Helper()
	app := fiber.New()
	app.Get("/:id?", fn)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.Pagination
	}{
		{"", domain.Pagination{Page: 1, Limit: 6}},
		{"?page=3&limit=10", domain.Pagination{Page: 3, Limit: 10}},
		{"?page=0&limit=-1", domain.Pagination{Page: 1, Limit: 6}},
		{"?page=x&limit=500", domain.Pagination{Page: 1, Limit: 100}},
		{"?page=5000000&limit=100", domain.Pagination{Page: domain.MaxPage, Limit: 100}},
		{"?page=99999999999999999999999", domain.Pagination{Page: domain.MaxPage, Limit: 6}},
		{"?page=-99999999999999999999999", domain.Pagination{Page: 1, Limit: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got domain.Pagination
			run(t, "/"+tt.query, func(c *fiber.Ctx) error {
				got = parsePagination(c)
				return nil
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	var (
		id  uint
		err error
	)
	parse := func(c *fiber.Ctx) error {
		id, err = parseID(c, "id")
		return nil
	}

	run(t, "/42", parse)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	run(t, "/0", parse)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseRecipeFilter(t *testing.T) {
	var (
		filter domain.RecipeFilter
		err    error
	)
	parse := func(c *fiber.Ctx) error {
		filter, err = parseRecipeFilter(c)
		return nil
	}

	run(t, "/?tags=breakfast&tags=lunch&author=7&is_favorited=1&is_in_shopping_cart=false", parse)
	require.NoError(t, err)
	assert.Equal(t, []string{"breakfast", "lunch"}, filter.Tags)
	require.NotNil(t, filter.AuthorID)
	assert.Equal(t, uint(7), *filter.AuthorID)
	require.NotNil(t, filter.IsFavorited)
	assert.True(t, *filter.IsFavorited)
	require.NotNil(t, filter.IsInShoppingCart)
	assert.False(t, *filter.IsInShoppingCart)

	run(t, "/?author=me", parse)
	var fields domain.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "author")

	run(t, "/", parse)
	require.NoError(t, err)
	assert.Empty(t, filter.Tags)
	assert.Nil(t, filter.AuthorID)
	assert.Nil(t, filter.IsFavorited)
}

func TestRecipesLimit(t *testing.T) {
	tests := []struct {
		query string
		want  *int
	}{
		{"", nil},
		{"?recipes_limit=abc", nil},
		{"?recipes_limit=-2", nil},
		{"?recipes_limit=0", intPtr(0)},
		{"?recipes_limit=3", intPtr(3)},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got *int
			run(t, "/"+tt.query, func(c *fiber.Ctx) error {
				got = recipesLimit(c)
				return nil
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func intPtr(v int) *int { return &v }
