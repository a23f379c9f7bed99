// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Default profile values applied at registration when the client
// omits the optional fields.
const (
	DefaultName   = "Jacques Cousteau"
	DefaultAbout  = "Ocean explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User is an account holder. The password is never stored or exposed
// in plaintext; only the bcrypt hash is persisted, and the hash itself
// is excluded from JSON serialization.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	About        string    `json:"about"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
