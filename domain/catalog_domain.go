package domain

var (
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetTag         = "success get tag"
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessGetIngredient  = "success get ingredient"
	MessageFailedGetTags         = "failed to get tags"
	MessageFailedGetTag          = "failed to get tag"
	MessageFailedGetIngredients  = "failed to get ingredients"
	MessageFailedGetIngredient   = "failed to get ingredient"

	ErrTagNotFound        = NewError(ErrNotFound, "tag not found")
	ErrIngredientNotFound = NewError(ErrNotFound, "ingredient not found")
)

type (
	TagResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	IngredientResponse struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
