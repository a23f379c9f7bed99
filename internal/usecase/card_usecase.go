package usecase

import (
	"context"

	"mesto/internal/domain/entity"
)

// CreateCardInput defines the data required to post a new card.
type CreateCardInput struct {
	Name string
	Link string
}

// CardUsecase defines the interface for card-related business operations.
type CardUsecase interface {
	// ListCards returns every card, newest first.
	ListCards(ctx context.Context) ([]*entity.Card, error)

	// CreateCard posts a new card owned by the caller.
	CreateCard(ctx context.Context, ownerID string, input *CreateCardInput) (*entity.Card, error)

	// DeleteCard removes a card. Only the owner may delete; anyone else
	// gets a forbidden error and the card is left untouched.
	DeleteCard(ctx context.Context, callerID, cardID string) (*entity.Card, error)

	// LikeCard idempotently adds the caller to the card's liking set.
	LikeCard(ctx context.Context, callerID, cardID string) (*entity.Card, error)

	// UnlikeCard idempotently removes the caller from the card's liking set.
	UnlikeCard(ctx context.Context, callerID, cardID string) (*entity.Card, error)
}
