package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mesto/internal/domain/entity"
	domainerrors "mesto/internal/domain/errors"
	"mesto/internal/infra/auth"
	"mesto/internal/infra/persistence/memory"
	"mesto/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserService(t *testing.T) (usecase.UserUsecase, *memory.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	hasher := auth.NewBcryptHasherWithCost(4)

	return NewUserService(users, hasher, newTestLogger()), users
}

func TestUserService_Register_AppliesDefaults(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultName, user.Name)
	assert.Equal(t, entity.DefaultAbout, user.About)
	assert.Equal(t, entity.DefaultAvatar, user.Avatar)
	assert.True(t, entity.IsValidID(user.ID))
}

func TestUserService_Register_KeepsProvidedProfile(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "marie@example.com",
		Password: "correct-horse",
		Name:     "Marie Curie",
		About:    "Physicist",
		Avatar:   "https://example.com/marie.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Marie Curie", user.Name)
	assert.Equal(t, "Physicist", user.About)
	assert.Equal(t, "https://example.com/marie.png", user.Avatar)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	users := memory.NewUserRepository()
	hasher := auth.NewBcryptHasherWithCost(4)
	service := NewUserService(users, hasher, newTestLogger())
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	stored, err := users.FindByEmail(ctx, "diver@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.True(t, hasher.Check("correct-horse", stored.PasswordHash))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "another-pass",
	})
	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_GetUser_MalformedID(t *testing.T) {
	service, _ := newUserService(t)

	_, err := service.GetUser(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, domainerrors.ErrIncorrectRequest)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service, _ := newUserService(t)

	_, err := service.GetUser(context.Background(), entity.NewID())
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	updated, err := service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Name:  "New Name",
		About: "New About",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "New About", updated.About)
	assert.Equal(t, user.Avatar, updated.Avatar)
}

func TestUserService_UpdateAvatar(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	updated, err := service.UpdateAvatar(ctx, user.ID, &usecase.UpdateAvatarInput{
		Avatar: "https://example.com/new.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.png", updated.Avatar)
	assert.Equal(t, user.Name, updated.Name)
}

func TestUserService_ListUsers(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := service.Register(ctx, &usecase.RegisterInput{Email: email, Password: "correct-horse"})
		require.NoError(t, err)
	}

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
