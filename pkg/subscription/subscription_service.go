package subscription

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/mapper"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Follow(ctx context.Context, userID, authorID uint, recipesLimit *int) (domain.SubscriptionResponse, error)
		Unfollow(ctx context.Context, userID, authorID uint) error
		ListSubscriptions(ctx context.Context, userID uint, pagination domain.Pagination, recipesLimit *int) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepository: subscriptionRepository}
}

func (s *subscriptionService) Follow(ctx context.Context, userID, authorID uint, recipesLimit *int) (domain.SubscriptionResponse, error) {
	var author *entities.User
	err := s.subscriptionRepository.Transaction(ctx, func(repo SubscriptionRepository) error {
		var err error
		author, err = getAuthor(ctx, repo, authorID, userID)
		if err != nil {
			return err
		}
		if userID == authorID {
			return domain.ErrSelfSubscription
		}

		exists, err := repo.Exists(ctx, userID, authorID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadySubscribed
		}

		if err := repo.Create(ctx, userID, authorID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadySubscribed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	author.IsSubscribed = true
	res, err := s.buildResponses(ctx, []*entities.User{author}, recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	return res[0], nil
}

func (s *subscriptionService) Unfollow(ctx context.Context, userID, authorID uint) error {
	return s.subscriptionRepository.Transaction(ctx, func(repo SubscriptionRepository) error {
		if _, err := getAuthor(ctx, repo, authorID, userID); err != nil {
			return err
		}

		deleted, err := repo.Delete(ctx, userID, authorID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return domain.ErrNotSubscribed
		}
		return nil
	})
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uint, pagination domain.Pagination, recipesLimit *int) ([]domain.SubscriptionResponse, int64, error) {
	authors, count, err := s.subscriptionRepository.GetSubscriptions(ctx, userID, pagination)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.buildResponses(ctx, authors, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (s *subscriptionService) buildResponses(ctx context.Context, authors []*entities.User, recipesLimit *int) ([]domain.SubscriptionResponse, error) {
	res := make([]domain.SubscriptionResponse, 0, len(authors))
	if len(authors) == 0 {
		return res, nil
	}

	ids := make([]uint, 0, len(authors))
	for _, author := range authors {
		ids = append(ids, author.ID)
	}
	counts, err := s.subscriptionRepository.CountRecipes(ctx, ids)
	if err != nil {
		return nil, err
	}
	recent, err := s.subscriptionRepository.GetRecentRecipes(ctx, ids, recipesLimit)
	if err != nil {
		return nil, err
	}

	for _, author := range authors {
		shorts := make([]domain.RecipeShort, 0, len(recent[author.ID]))
		for _, recipe := range recent[author.ID] {
			shorts = append(shorts, mapper.RecipeEntityToShort(recipe))
		}
		res = append(res, domain.SubscriptionResponse{
			UserResponse: mapper.UserEntityToResponse(author),
			Recipes:      shorts,
			RecipesCount: counts[author.ID],
		})
	}
	return res, nil
}

func getAuthor(ctx context.Context, repo SubscriptionRepository, authorID, viewerID uint) (*entities.User, error) {
	author, err := repo.GetAuthor(ctx, authorID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return author, nil
}
