package repository

import (
	"context"
	"errors"

	"mesto/internal/domain/entity"
)

// ErrCardNotFound is a domain-specific error returned when a card is not found.
var ErrCardNotFound = errors.New("card not found")

// CardRepository defines the standard operations for card persistence.
//
// AddLike and RemoveLike are single atomic set-membership operations
// against one record. Concurrent calls for different users commute;
// repeated calls for the same user are no-ops.
type CardRepository interface {
	// FindAll retrieves every card, newest first.
	FindAll(ctx context.Context) ([]*entity.Card, error)

	// FindByID retrieves a single card by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Card, error)

	// Create persists a new card entity to the storage.
	Create(ctx context.Context, card *entity.Card) error

	// Delete removes a card record. Ownership is checked by the caller.
	Delete(ctx context.Context, id string) error

	// AddLike idempotently adds userID to the card's liking set and
	// returns the updated card.
	AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error)

	// RemoveLike idempotently removes userID from the card's liking set
	// and returns the updated card.
	RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error)
}
