package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/logger"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/mapper"
	"Foodgram-Backend/pkg/shortlink"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageDir = "recipes"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, viewerID uint, filter domain.RecipeFilter, pagination domain.Pagination) ([]domain.RecipeResponse, int64, error)
		GetRecipe(ctx context.Context, id uint, viewerID uint) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID uint) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID uint) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint, userID uint) error
		GetShortLinkToken(ctx context.Context, id uint) (string, error)
		ResolveShortLink(ctx context.Context, token string) (uint, error)
		GetShoppingList(ctx context.Context, userID uint) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, viewerID uint, filter domain.RecipeFilter, pagination domain.Pagination) ([]domain.RecipeResponse, int64, error) {
	if err := s.checkTagSlugs(ctx, filter.Tags); err != nil {
		return nil, 0, err
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, viewerID, filter, pagination)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, mapper.RecipeEntityToResponse(recipe))
	}
	return res, count, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint, viewerID uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return mapper.RecipeEntityToResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID uint) (domain.RecipeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := s.checkReferences(ctx, req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		AuthorID:          authorID,
		Name:              req.Name,
		Text:              req.Text,
		CookingTime:       req.CookingTime,
		Image:             imageURL,
		Tags:              tagRefs(req.Tags),
		RecipeIngredients: ingredientRows(req.Ingredients),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		s.deleteImage(ctx, imageURL)
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipe(ctx, recipe.ID, authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := s.checkReferences(ctx, req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	oldImage := recipe.Image
	if req.Image != nil {
		imageURL, err := s.uploadImage(ctx, *req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Image = imageURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, req.Tags, ingredientRows(req.Ingredients)); err != nil {
		if recipe.Image != oldImage {
			s.deleteImage(ctx, recipe.Image)
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.Image != oldImage {
		s.deleteImage(ctx, oldImage)
	}

	return s.GetRecipe(ctx, recipe.ID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID uint) error {
	recipe, err := s.getOwnRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	s.deleteImage(ctx, recipe.Image)
	return nil
}

func (s *recipeService) GetShortLinkToken(ctx context.Context, id uint) (string, error) {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return "", err
	}
	return shortlink.Encode(uint64(id)), nil
}

// ResolveShortLink returns the id of the recipe the token points to.
func (s *recipeService) ResolveShortLink(ctx context.Context, token string) (uint, error) {
	id, err := shortlink.Decode(token)
	if err != nil || uint64(uint(id)) != id {
		return 0, domain.ErrInvalidShortLink
	}

	recipe, err := s.getRecipe(ctx, uint(id))
	if err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

func (s *recipeService) GetShoppingList(ctx context.Context, userID uint) (string, error) {
	items, err := s.recipeRepository.GetShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}
	return RenderShoppingList(items), nil
}

func (s *recipeService) getRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByIDBasic(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) getOwnRecipe(ctx context.Context, id uint, userID uint) (*entities.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, domain.ErrNotRecipeAuthor
	}
	return recipe, nil
}

// checkTagSlugs rejects filter slugs that name no tag.
func (s *recipeService) checkTagSlugs(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}

	tags, err := s.recipeRepository.GetTagsBySlugs(ctx, slugs)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(tags))
	for _, tag := range tags {
		known[tag.Slug] = true
	}

	fields := domain.FieldErrors{}
	for _, slug := range slugs {
		if !known[slug] {
			fields.Add("tags", fmt.Sprintf("select a valid choice, %s is not one of the available choices", slug))
		}
	}
	return fields.OrNil()
}

// checkReferences reports every tag or ingredient id that does not exist.
func (s *recipeService) checkReferences(ctx context.Context, tagIDs []uint, ingredients []domain.IngredientAmountRequest) error {
	tags, err := s.recipeRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	knownTags := make(map[uint]bool, len(tags))
	for _, tag := range tags {
		knownTags[tag.ID] = true
	}

	ingredientIDs := make([]uint, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}
	found, err := s.recipeRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	knownIngredients := make(map[uint]bool, len(found))
	for _, ingredient := range found {
		knownIngredients[ingredient.ID] = true
	}

	fields := domain.FieldErrors{}
	for _, id := range tagIDs {
		if !knownTags[id] {
			fields.Add("tags", fmt.Sprintf("invalid pk \"%d\" - object does not exist", id))
		}
	}
	for i, id := range ingredientIDs {
		if !knownIngredients[id] {
			fields.Add(fmt.Sprintf("ingredients[%d].id", i), fmt.Sprintf("invalid pk \"%d\" - object does not exist", id))
		}
	}
	return fields.OrNil()
}

func (s *recipeService) uploadImage(ctx context.Context, dataURI string) (string, error) {
	file, err := storage.DecodeDataURI(dataURI)
	if err != nil {
		return "", imageError(err)
	}

	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), file, imageDir, storage.AllowImage...)
	if err != nil {
		return "", imageError(err)
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

// deleteImage is best effort, a failure leaves an orphaned object behind.
func (s *recipeService) deleteImage(ctx context.Context, link string) {
	objectKey := s.s3.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		logger.Warn("failed to delete recipe image", zap.String("key", objectKey), zap.Error(err))
	}
}

// imageError reports decoding problems against the image field.
func imageError(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		fields := domain.FieldErrors{}
		fields.Add("image", err.Error())
		return fields
	}
	return err
}

func tagRefs(ids []uint) []*entities.Tag {
	tags := make([]*entities.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, &entities.Tag{ID: id})
	}
	return tags
}

func ingredientRows(items []domain.IngredientAmountRequest) []*entities.RecipeIngredient {
	rows := make([]*entities.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, &entities.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return rows
}
