// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mesto/internal/delivery/context"
	"mesto/internal/domain/entity"
	domainerrors "mesto/internal/domain/errors"
	"mesto/internal/domain/repository"
	"mesto/internal/domain/service"
	"mesto/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, applies profile defaults and persists
// the new user. A duplicate email surfaces as a conflict.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		About:        input.About,
		Avatar:       input.Avatar,
	}
	if newUser.Name == "" {
		newUser.Name = entity.DefaultName
	}
	if newUser.About == "" {
		newUser.About = entity.DefaultAbout
	}
	if newUser.Avatar == "" {
		newUser.Avatar = entity.DefaultAvatar
	}

	if err := srv.users.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("user registration failed")
		}

		return nil, errors.WithStack(err)
	}

	return newUser, nil
}

// ListUsers returns every user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns the user with the given id. A malformed id is an
// incorrect request, never a not-found.
func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if !entity.IsValidID(id) {
		return nil, domainerrors.ErrIncorrectRequest.WrapMessage("malformed user id")
	}

	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// GetCurrentUser resolves the caller's own record. The identity comes
// from a verified token, so a missing record means it is gone, not
// that the id was malformed.
func (srv *userService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("current user record is gone")
		}

		return nil, errors.Wrap(err, "failed to find current user")
	}

	return user, nil
}

// UpdateProfile mutates the caller's own name and about fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.String("user_id", userID))

	user, err := srv.users.UpdateProfile(ctx, userID, input.Name, input.About)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UpdateAvatar mutates the caller's own avatar field.
func (srv *userService) UpdateAvatar(ctx context.Context, userID string, input *usecase.UpdateAvatarInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating avatar", slog.String("user_id", userID))

	user, err := srv.users.UpdateAvatar(ctx, userID, input.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("avatar update failed")
		}

		return nil, errors.Wrap(err, "failed to update avatar")
	}

	return user, nil
}
