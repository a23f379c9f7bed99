package impl

import (
	"context"
	"log/slog"

	deliverycontext "mesto/internal/delivery/context"
	"mesto/internal/domain/entity"
	domainerrors "mesto/internal/domain/errors"
	"mesto/internal/domain/repository"
	"mesto/internal/usecase"

	"github.com/pkg/errors"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	cards  repository.CardRepository
	logger *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(
	cards repository.CardRepository,
	logger *slog.Logger,
) usecase.CardUsecase {
	return &cardService{
		cards:  cards,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCards returns every card, newest first.
func (srv *cardService) ListCards(ctx context.Context) ([]*entity.Card, error) {
	cards, err := srv.cards.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}

// CreateCard posts a new card owned by the caller.
func (srv *cardService) CreateCard(ctx context.Context, ownerID string, input *usecase.CreateCardInput) (*entity.Card, error) {
	srv.log(ctx).Info("Creating card", slog.String("owner_id", ownerID), slog.String("name", input.Name))

	card := &entity.Card{
		Name:    input.Name,
		Link:    input.Link,
		OwnerID: ownerID,
		Likes:   []string{},
	}
	if err := srv.cards.Create(ctx, card); err != nil {
		return nil, errors.WithStack(err)
	}

	return card, nil
}

// DeleteCard removes a card after checking the caller owns it. The
// existence check runs first so a non-owner probing a missing card
// still sees not-found, and a non-owner of a real card sees forbidden
// with the card left untouched.
func (srv *cardService) DeleteCard(ctx context.Context, callerID, cardID string) (*entity.Card, error) {
	if !entity.IsValidID(cardID) {
		return nil, domainerrors.ErrIncorrectRequest.WrapMessage("malformed card id")
	}

	card, err := srv.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("card deletion failed")
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	if card.OwnerID != callerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("card belongs to another user")
	}

	if err := srv.cards.Delete(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("card deletion failed")
		}

		return nil, errors.Wrap(err, "failed to delete card")
	}

	srv.log(ctx).Info("Card deleted", slog.String("card_id", cardID), slog.String("owner_id", callerID))

	return card, nil
}

// LikeCard idempotently adds the caller to the card's liking set.
func (srv *cardService) LikeCard(ctx context.Context, callerID, cardID string) (*entity.Card, error) {
	return srv.changeLike(ctx, callerID, cardID, srv.cards.AddLike)
}

// UnlikeCard idempotently removes the caller from the card's liking set.
func (srv *cardService) UnlikeCard(ctx context.Context, callerID, cardID string) (*entity.Card, error) {
	return srv.changeLike(ctx, callerID, cardID, srv.cards.RemoveLike)
}

// changeLike applies one set-membership operation. A missing card
// yields exactly one not-found error and nothing else runs after it.
func (srv *cardService) changeLike(
	ctx context.Context,
	callerID, cardID string,
	op func(ctx context.Context, cardID, userID string) (*entity.Card, error),
) (*entity.Card, error) {
	if !entity.IsValidID(cardID) {
		return nil, domainerrors.ErrIncorrectRequest.WrapMessage("malformed card id")
	}

	card, err := op(ctx, cardID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("like change failed")
		}

		return nil, errors.Wrap(err, "failed to change like")
	}

	return card, nil
}
