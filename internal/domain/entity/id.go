package entity

import (
	"crypto/rand"
	"encoding/hex"
)

// idLen is the length of record identifiers: 12 random bytes hex-encoded.
const idLen = 24

// NewID generates a new 24-character lowercase hex identifier.
func NewID() string {
	buf := make([]byte, idLen/2)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// IsValidID reports whether s is a well-formed record identifier.
func IsValidID(s string) bool {
	if len(s) != idLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
