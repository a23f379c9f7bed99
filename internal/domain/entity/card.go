package entity

import (
	"slices"
	"time"
)

// Card is a posted photo: a name, an image link, the owning user and
// the set of users who liked it. The owner never changes after
// creation; Likes holds each user ID at most once.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether the given user is in the card's liking set.
func (c *Card) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}
