package domain

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "user logged in successfully"
	MessageSuccessLogout           = "user logged out successfully"
	MessageSuccessGetUsers         = "success get users"
	MessageSuccessGetUser          = "success get user"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessSetPassword      = "password changed successfully"
	MessageSuccessUpdateAvatar     = "avatar updated successfully"
	MessageSuccessDeleteAvatar     = "avatar deleted successfully"
	MessageSuccessSubscribe        = "subscribed successfully"
	MessageSuccessUnsubscribe      = "unsubscribed successfully"
	MessageSuccessGetSubscriptions = "success get subscriptions"
	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to log in"
	MessageFailedLogout            = "failed to log out"
	MessageFailedGetUsers          = "failed to get users"
	MessageFailedGetUser           = "failed to get user"
	MessageFailedUpdateUser        = "failed to update user"
	MessageFailedSetPassword       = "failed to change password"
	MessageFailedUpdateAvatar      = "failed to update avatar"
	MessageFailedDeleteAvatar      = "failed to delete avatar"
	MessageFailedSubscribe         = "failed to subscribe"
	MessageFailedUnsubscribe       = "failed to unsubscribe"
	MessageFailedGetSubscriptions  = "failed to get subscriptions"
	MessageUsernameTaken           = "a user with that username already exists"
	MessageEmailTaken              = "a user with that email already exists"
	MessageInvalidCurrentPassword  = "invalid password"
	MessageWelcomeMailSubject      = "Welcome to Foodgram"
	MessageWelcomeMailBodyTemplate = "<p>Hi %s,</p><p>your Foodgram account is ready. Happy cooking!</p>"

	ErrUserNotFound       = NewError(ErrNotFound, "user not found")
	ErrInvalidCredentials = NewError(ErrValidation, "unable to log in with provided credentials")
	ErrSelfSubscription   = NewError(ErrValidation, "you cannot subscribe to yourself")
	ErrAlreadySubscribed  = NewError(ErrConflict, "subscription already exists")
	ErrNotSubscribed      = NewError(ErrNotLinked, "subscription does not exist")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}

	RegisterResponse struct {
		ID        uint   `json:"id"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	UpdateProfileRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
	}

	SetPasswordRequest struct {
		NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
		CurrentPassword string `json:"current_password" validate:"required"`
	}

	AvatarRequest struct {
		Avatar string `json:"avatar" validate:"required"`
	}

	AvatarResponse struct {
		Avatar string `json:"avatar"`
	}

	UserResponse struct {
		ID           uint   `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
		Avatar       string `json:"avatar"`
	}

	SubscriptionResponse struct {
		UserResponse
		Recipes      []RecipeShort `json:"recipes"`
		RecipesCount int64         `json:"recipes_count"`
	}
)
