// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mesto/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email unique constraint is violated.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user record.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile sets the name and about fields of one user record
	// and returns the updated entity.
	UpdateProfile(ctx context.Context, id, name, about string) (*entity.User, error)

	// UpdateAvatar sets the avatar field of one user record and
	// returns the updated entity.
	UpdateAvatar(ctx context.Context, id, avatar string) (*entity.User, error)

	// There is deliberately no Delete: accounts are never removed in
	// this design, so cards cannot be orphaned by this interface.
}
