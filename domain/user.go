package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login success"
	MessageSuccessGetMe      = "user profile retrieved successfully"
	MessageSuccessUpdateUser = "user updated successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to retrieve user profile"
	MessageFailedUpdateUser = "failed to update user"

	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrCredentialsNotMatched = errors.New("credentials not matched")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name         string                `form:"name"`
		ProfileImage *multipart.FileHeader `form:"profile_image"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		ProfileImage string    `json:"profile_image,omitempty"`
		LastSignedIn time.Time `json:"last_signed_in"`
	}
)
