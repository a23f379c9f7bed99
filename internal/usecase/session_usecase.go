package usecase

import (
	"context"

	"mesto/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the session token after a successful login. The
// delivery layer puts the token in a cookie and never echoes it in the
// response body.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// SessionUsecase defines the interface for establishing sessions.
type SessionUsecase interface {
	// Login verifies credentials and issues a session token. Failure is
	// a single generic authorization error: callers cannot distinguish
	// an unknown email from a wrong password.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
