package user

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User) (*entities.User, error)
		GetUserByID(ctx context.Context, id uint, viewerID uint) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUsers(ctx context.Context, viewerID uint, pagination domain.Pagination) ([]*entities.User, int64, error)
		CheckTaken(ctx context.Context, username, email string, excludeID uint) (usernameTaken bool, emailTaken bool, err error)
		UpdateProfile(ctx context.Context, user *entities.User) error
		UpdatePassword(ctx context.Context, id uint, hash string) error
		UpdateAvatar(ctx context.Context, id uint, avatar string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint, viewerID uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Scopes(SelectIsSubscribed(viewerID)).
		Where("users.id = ?", id).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context, viewerID uint, pagination domain.Pagination) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Scopes(SelectIsSubscribed(viewerID)).
		Order("users.username").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// CheckTaken reports whether another account already uses username or email.
func (r *userRepository) CheckTaken(ctx context.Context, username, email string, excludeID uint) (bool, bool, error) {
	var usernames, emails int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&usernames).Error; err != nil {
		return false, false, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&emails).Error; err != nil {
		return false, false, err
	}

	return usernames > 0, emails > 0, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Model(&entities.User{ID: user.ID}).Updates(map[string]any{
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&entities.User{ID: id}).Update("password", hash).Error
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id uint, avatar string) error {
	return r.db.WithContext(ctx).Model(&entities.User{ID: id}).Update("avatar", avatar).Error
}
