package memory

import (
	"context"
	"testing"

	"mesto/internal/domain/entity"
	"mesto/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Email: "diver@example.com", Name: "Diver"}
	require.NoError(t, repo.Create(ctx, user))
	require.True(t, entity.IsValidID(user.ID))

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "diver@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "diver@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFoundSentinels(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, entity.NewID())
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.UpdateProfile(ctx, entity.NewID(), "Name", "About")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "diver@example.com"}))

	err := repo.Create(ctx, &entity.User{Email: "diver@example.com"})
	require.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Email: "diver@example.com", Name: "Original"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	found.Name = "Mutated"

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}
