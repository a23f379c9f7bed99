// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesto/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Optional profile fields are defaulted when empty.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

// UpdateProfileInput defines the data for a profile update. Both
// fields are required; the target record is always the caller's own.
type UpdateProfileInput struct {
	Name  string
	About string
}

// UpdateAvatarInput defines the data for an avatar update.
type UpdateAvatarInput struct {
	Avatar string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register hashes the password, applies profile defaults and
	// persists the new user.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// ListUsers returns every user. No pagination.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// GetCurrentUser resolves the caller's own record.
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)

	// UpdateProfile mutates the caller's own name and about fields.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// UpdateAvatar mutates the caller's own avatar field.
	UpdateAvatar(ctx context.Context, userID string, input *UpdateAvatarInput) (*entity.User, error)
}
