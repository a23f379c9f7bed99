// Package memory stores records in process memory behind the same
// repository interfaces as the postgres implementation. It backs tests
// and lightweight local runs.
package memory

import (
	"context"
	"sync"
	"time"

	"mesto/internal/domain/entity"
	"mesto/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string
}

// NewUserRepository returns an initialized in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}

// FindByID retrieves a single user by their unique ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByEmail retrieves a single user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(r.users[id]), nil
}

// FindAll retrieves every user record.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}

	return users, nil
}

// Create persists a new user entity, enforcing email uniqueness.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrEmailTaken
	}

	if user.ID == "" {
		user.ID = entity.NewID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = user.ID

	return nil
}

// UpdateProfile sets the name and about fields of one user record.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user.Name = name
	user.About = about
	user.UpdatedAt = time.Now()

	return cloneUser(user), nil
}

// UpdateAvatar sets the avatar field of one user record.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user.Avatar = avatar
	user.UpdatedAt = time.Now()

	return cloneUser(user), nil
}
