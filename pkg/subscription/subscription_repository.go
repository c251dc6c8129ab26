package subscription

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/user"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		Transaction(ctx context.Context, fn func(repo SubscriptionRepository) error) error
		GetAuthor(ctx context.Context, authorID uint, viewerID uint) (*entities.User, error)
		Exists(ctx context.Context, userID, authorID uint) (bool, error)
		Create(ctx context.Context, userID, authorID uint) error
		Delete(ctx context.Context, userID, authorID uint) (int64, error)
		GetSubscriptions(ctx context.Context, userID uint, pagination domain.Pagination) ([]*entities.User, int64, error)
		CountRecipes(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
		GetRecentRecipes(ctx context.Context, authorIDs []uint, limit *int) (map[uint][]*entities.Recipe, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Transaction(ctx context.Context, fn func(repo SubscriptionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&subscriptionRepository{db: tx})
	})
}

func (r *subscriptionRepository) GetAuthor(ctx context.Context, authorID uint, viewerID uint) (*entities.User, error) {
	var author entities.User
	if err := r.db.WithContext(ctx).
		Scopes(user.SelectIsSubscribed(viewerID)).
		Where("users.id = ?", authorID).
		Take(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, userID, authorID uint) error {
	return r.db.WithContext(ctx).Create(&entities.Follow{UserID: userID, AuthorID: authorID}).Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, userID, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&entities.Follow{})
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) GetSubscriptions(ctx context.Context, userID uint, pagination domain.Pagination) ([]*entities.User, int64, error) {
	var authors []*entities.User
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Scopes(user.SelectIsSubscribed(userID)).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.username").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&authors).Error; err != nil {
		return nil, 0, err
	}

	return authors, count, nil
}

func (r *subscriptionRepository) CountRecipes(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	var rows []struct {
		AuthorID uint
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// GetRecentRecipes returns the newest recipes of each author, ranked per
// author in one query. A nil limit returns all of them.
func (r *subscriptionRepository) GetRecentRecipes(ctx context.Context, authorIDs []uint, limit *int) (map[uint][]*entities.Recipe, error) {
	ranked := r.db.
		Model(&entities.Recipe{}).
		Select("id, author_id, name, image, cooking_time, " +
			"ROW_NUMBER() OVER (PARTITION BY author_id ORDER BY created_at DESC, id DESC) AS recency").
		Where("author_id IN ?", authorIDs)

	query := r.db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Select("id, author_id, name, image, cooking_time")
	if limit != nil {
		query = query.Where("recency <= ?", *limit)
	}

	var recipes []*entities.Recipe
	if err := query.Order("author_id").Order("recency").Scan(&recipes).Error; err != nil {
		return nil, err
	}

	byAuthor := make(map[uint][]*entities.Recipe, len(authorIDs))
	for _, recipe := range recipes {
		byAuthor[recipe.AuthorID] = append(byAuthor[recipe.AuthorID], recipe)
	}
	return byAuthor, nil
}
