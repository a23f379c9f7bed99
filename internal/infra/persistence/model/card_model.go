package model

import "time"

// CardModel mirrors the 'cards' table. OwnerID references users.id but
// carries no cascade rule: user records are never deleted in this design.
type CardModel struct {
	ID        string `gorm:"type:char(24);primaryKey"`
	Name      string `gorm:"type:varchar(30);not null"`
	Link      string `gorm:"type:text;not null"`
	OwnerID   string `gorm:"type:char(24);index;not null"`
	CreatedAt time.Time `gorm:"index:idx_cards_created_at,sort:desc"`
	UpdatedAt time.Time

	Likes []CardLikeModel `gorm:"foreignKey:CardID"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}

// CardLikeModel mirrors the 'card_likes' table. The composite primary
// key is what gives likes their set semantics: a user appears at most
// once per card, and inserts with ON CONFLICT DO NOTHING are idempotent.
type CardLikeModel struct {
	CardID    string `gorm:"type:char(24);primaryKey"`
	UserID    string `gorm:"type:char(24);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardLikeModel) TableName() string {
	return "card_likes"
}
