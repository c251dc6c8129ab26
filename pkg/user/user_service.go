package user

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils/logger"
	"Foodgram-Backend/internal/utils/mailing"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/jwt"
	"Foodgram-Backend/pkg/mapper"
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const avatarDir = "users"

var errAccountTaken = domain.NewError(domain.ErrConflict, "a user with that username or email already exists")

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, token string) error
		GetUsers(ctx context.Context, viewerID uint, pagination domain.Pagination) ([]domain.UserResponse, int64, error)
		GetUser(ctx context.Context, id uint, viewerID uint) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		SetPassword(ctx context.Context, userID uint, req domain.SetPasswordRequest) error
		UpdateAvatar(ctx context.Context, userID uint, req domain.AvatarRequest) (domain.AvatarResponse, error)
		DeleteAvatar(ctx context.Context, userID uint) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if err := s.checkTaken(ctx, req.Username, req.Email, 0); err != nil {
		return domain.RegisterResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user, err := s.userRepository.RegisterUser(ctx, &entities.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, errAccountTaken
		}
		return domain.RegisterResponse{}, err
	}

	if s.mailer.Enabled() {
		go s.sendWelcomeMail(user.Email, user.FirstName)
	}

	return domain.RegisterResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) sendWelcomeMail(email, firstName string) {
	body := fmt.Sprintf(domain.MessageWelcomeMailBodyTemplate, html.EscapeString(firstName))
	if err := s.mailer.SendMail(email, domain.MessageWelcomeMailSubject, body); err != nil {
		logger.Warn("failed to send welcome mail", zap.String("email", email), zap.Error(err))
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.jwtService.RevokeToken(ctx, token)
}

func (s *userService) GetUsers(ctx context.Context, viewerID uint, pagination domain.Pagination) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, viewerID, pagination)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, mapper.UserEntityToResponse(user))
	}
	return res, count, nil
}

func (s *userService) GetUser(ctx context.Context, id uint, viewerID uint) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, id, viewerID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return mapper.UserEntityToResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if err := s.checkTaken(ctx, req.Username, req.Email, userID); err != nil {
		return domain.UserResponse{}, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := s.userRepository.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, errAccountTaken
		}
		return domain.UserResponse{}, err
	}
	return mapper.UserEntityToResponse(user), nil
}

func (s *userService) SetPassword(ctx context.Context, userID uint, req domain.SetPasswordRequest) error {
	user, err := s.getUser(ctx, userID, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		fields := domain.FieldErrors{}
		fields.Add("current_password", domain.MessageInvalidCurrentPassword)
		return fields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, userID, string(hash))
}

func (s *userService) UpdateAvatar(ctx context.Context, userID uint, req domain.AvatarRequest) (domain.AvatarResponse, error) {
	user, err := s.getUser(ctx, userID, userID)
	if err != nil {
		return domain.AvatarResponse{}, err
	}

	file, err := storage.DecodeDataURI(req.Avatar)
	if err != nil {
		return domain.AvatarResponse{}, avatarError(err)
	}
	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), file, avatarDir, storage.AllowImage...)
	if err != nil {
		return domain.AvatarResponse{}, avatarError(err)
	}
	link := s.s3.GetPublicLinkKey(objectKey)

	if err := s.userRepository.UpdateAvatar(ctx, userID, link); err != nil {
		s.deleteAvatar(ctx, link)
		return domain.AvatarResponse{}, err
	}
	s.deleteAvatar(ctx, user.Avatar)

	return domain.AvatarResponse{Avatar: link}, nil
}

func (s *userService) DeleteAvatar(ctx context.Context, userID uint) error {
	user, err := s.getUser(ctx, userID, userID)
	if err != nil {
		return err
	}

	if err := s.userRepository.UpdateAvatar(ctx, userID, ""); err != nil {
		return err
	}
	s.deleteAvatar(ctx, user.Avatar)
	return nil
}

func (s *userService) getUser(ctx context.Context, id uint, viewerID uint) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) checkTaken(ctx context.Context, username, email string, excludeID uint) error {
	usernameTaken, emailTaken, err := s.userRepository.CheckTaken(ctx, username, email, excludeID)
	if err != nil {
		return err
	}

	fields := domain.FieldErrors{}
	if usernameTaken {
		fields.Add("username", domain.MessageUsernameTaken)
	}
	if emailTaken {
		fields.Add("email", domain.MessageEmailTaken)
	}
	return fields.OrNil()
}

func (s *userService) deleteAvatar(ctx context.Context, link string) {
	objectKey := s.s3.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		logger.Warn("failed to delete avatar", zap.String("key", objectKey), zap.Error(err))
	}
}

func avatarError(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		fields := domain.FieldErrors{}
		fields.Add("avatar", err.Error())
		return fields
	}
	return err
}
