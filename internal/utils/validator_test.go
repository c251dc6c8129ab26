package utils

import (
	"Foodgram-Backend/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	InitValidator()

	valid := domain.CreateRecipeRequest{
		Ingredients: []domain.IngredientAmountRequest{{ID: 1, Amount: 10}, {ID: 2, Amount: 5}},
		Tags:        []uint{1, 2},
		Image:       "data:image/png;base64,AAAA",
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
	}

	tests := []struct {
		name    string
		mutate  func(r *domain.CreateRecipeRequest)
		field   string
		message string
	}{
		{
			name:    "duplicate ingredient ids",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Ingredients[1].ID = 1 },
			field:   "ingredients",
			message: "items must not repeat",
		},
		{
			name:    "empty tag list",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Tags = []uint{} },
			field:   "tags",
			message: "ensure this field has at least 1 items",
		},
		{
			name:    "missing tags",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Tags = nil },
			field:   "tags",
			message: "this field is required",
		},
		{
			name:    "duplicate tags",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Tags = []uint{3, 3} },
			field:   "tags",
			message: "items must not repeat",
		},
		{
			name:    "zero amount",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Ingredients[0].Amount = 0 },
			field:   "ingredients[0].amount",
			message: "this field is required",
		},
		{
			name:    "cooking time too long",
			mutate:  func(r *domain.CreateRecipeRequest) { r.CookingTime = domain.MaxCookingTime + 1 },
			field:   "cooking_time",
			message: "ensure this value is less than or equal to 32000",
		},
		{
			name:    "missing image",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Image = "" },
			field:   "image",
			message: "this field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Ingredients = append([]domain.IngredientAmountRequest(nil), valid.Ingredients...)
			req.Tags = append([]uint(nil), valid.Tags...)
			tt.mutate(&req)

			err := ValidationErrors(Validate.Struct(req))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var fields domain.FieldErrors
			require.True(t, errors.As(err, &fields))
			assert.Contains(t, fields[tt.field], tt.message)
		})
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, Validate.Struct(valid))
	})
}

func TestUsernameRule(t *testing.T) {
	InitValidator()

	req := domain.RegisterRequest{
		Email:     "cook@example.com",
		FirstName: "Ann",
		LastName:  "Cook",
		Password:  "supersecret",
	}

	for username, ok := range map[string]bool{
		"ann.cook":  true,
		"ann+cook@": true,
		"анна_1":    true,
		"ann cook":  false,
		"ann#cook":  false,
	} {
		req.Username = username
		err := Validate.Struct(req)
		assert.Equal(t, ok, err == nil, username)
	}
}
