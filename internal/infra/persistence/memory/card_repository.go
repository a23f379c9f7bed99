package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"mesto/internal/domain/entity"
	"mesto/internal/domain/repository"
)

// CardRepository is an in-memory implementation of repository.CardRepository.
type CardRepository struct {
	mu    sync.RWMutex
	cards map[string]*entity.Card
}

// NewCardRepository returns an initialized in-memory card repository.
func NewCardRepository() *CardRepository {
	return &CardRepository{cards: make(map[string]*entity.Card)}
}

func cloneCard(c *entity.Card) *entity.Card {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Likes = slices.Clone(c.Likes)
	if clone.Likes == nil {
		clone.Likes = []string{}
	}

	return &clone
}

// FindAll retrieves every card, newest first.
func (r *CardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]*entity.Card, 0, len(r.cards))
	for _, card := range r.cards {
		cards = append(cards, cloneCard(card))
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})

	return cards, nil
}

// FindByID retrieves a single card by its unique ID.
func (r *CardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	if !ok {
		return nil, repository.ErrCardNotFound
	}

	return cloneCard(card), nil
}

// Create persists a new card entity.
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if card.ID == "" {
		card.ID = entity.NewID()
	}
	card.CreatedAt = time.Now()
	if card.Likes == nil {
		card.Likes = []string{}
	}

	r.cards[card.ID] = cloneCard(card)

	return nil
}

// Delete removes a card record.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[id]; !ok {
		return repository.ErrCardNotFound
	}
	delete(r.cards, id)

	return nil
}

// AddLike idempotently adds userID to the card's liking set.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[cardID]
	if !ok {
		return nil, repository.ErrCardNotFound
	}

	if !slices.Contains(card.Likes, userID) {
		card.Likes = append(card.Likes, userID)
	}

	return cloneCard(card), nil
}

// RemoveLike idempotently removes userID from the card's liking set.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[cardID]
	if !ok {
		return nil, repository.ErrCardNotFound
	}

	card.Likes = slices.DeleteFunc(card.Likes, func(id string) bool {
		return id == userID
	})

	return cloneCard(card), nil
}
