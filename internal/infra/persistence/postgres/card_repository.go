package postgres

import (
	"context"

	"mesto/internal/domain/entity"
	domainerrors "mesto/internal/domain/errors"
	"mesto/internal/domain/repository"
	"mesto/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cardRepository implements the repository.CardRepository interface using GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// FindAll retrieves every card, newest first.
func (repo *cardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	var cardMs []model.CardModel
	err := repo.db.WithContext(ctx).
		Preload("Likes").
		Order("created_at DESC").
		Find(&cardMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	cards := make([]*entity.Card, 0, len(cardMs))
	for i := range cardMs {
		cards = append(cards, toCardDomain(&cardMs[i]))
	}

	return cards, nil
}

// FindByID retrieves a single card by its unique ID.
func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	var cardM model.CardModel
	err := repo.db.WithContext(ctx).
		Preload("Likes").
		Where("id = ?", id).
		First(&cardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by id")
	}

	return toCardDomain(&cardM), nil
}

// Create persists a new card entity.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	if card.ID == "" {
		card.ID = entity.NewID()
	}
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIncorrectRequest.WrapMessage("invalid card owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIncorrectRequest.WrapMessage("missing required card information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	card.CreatedAt = cardM.CreatedAt
	if card.Likes == nil {
		card.Likes = []string{}
	}

	return nil
}

// Delete removes a card record and its likes.
func (repo *cardRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("card_id = ?", id).
		Delete(&model.CardLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete card likes")
	}

	res := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CardModel{})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete card")
	}
	if res.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// AddLike inserts the (card, user) membership row; ON CONFLICT DO
// NOTHING makes repeated likes by the same user a no-op, and the write
// is a single atomic statement.
func (repo *cardRepository) AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	if err := repo.ensureCardExists(ctx, cardID); err != nil {
		return nil, err
	}

	like := model.CardLikeModel{CardID: cardID, UserID: userID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return repo.FindByID(ctx, cardID)
}

// RemoveLike deletes the membership row; deleting an absent row is not
// an error.
func (repo *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	if err := repo.ensureCardExists(ctx, cardID); err != nil {
		return nil, err
	}

	err := repo.db.WithContext(ctx).
		Where("card_id = ? AND user_id = ?", cardID, userID).
		Delete(&model.CardLikeModel{}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return repo.FindByID(ctx, cardID)
}

func (repo *cardRepository) ensureCardExists(ctx context.Context, cardID string) error {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", cardID).
		Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "failed to check card existence")
	}
	if count == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCardDomain converts a GORM CardModel to a domain Card entity.
func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	likes := make([]string, 0, len(data.Likes))
	for _, like := range data.Likes {
		likes = append(likes, like.UserID)
	}

	return &entity.Card{
		ID:        data.ID,
		Name:      data.Name,
		Link:      data.Link,
		OwnerID:   data.OwnerID,
		Likes:     likes,
		CreatedAt: data.CreatedAt,
	}
}

// fromCardDomain converts a domain Card entity to a GORM CardModel for persistence.
func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	return &model.CardModel{
		ID:      data.ID,
		Name:    data.Name,
		Link:    data.Link,
		OwnerID: data.OwnerID,
	}
}
