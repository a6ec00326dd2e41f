package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessRefresh  = "access token refreshed"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "invalid login or password"
	MessageFailedRefresh  = "failed to refresh access token"

	ErrLoginTaken         = errors.New("login already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrCredentialsInvalid = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Login    string `json:"login" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	RegisterResponse struct {
		Login string `json:"login"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Login    string `json:"login" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// Field names mirror what the mobile client reads from /auth.
	LoginResponse struct {
		Access    string `json:"access"`
		ExpiresIn int    `json:"expiresIn"`
		UserID    string `json:"userId"`
	}

	RefreshResponse struct {
		Access    string `json:"access"`
		ExpiresIn int    `json:"expiresIn"`
	}
)
