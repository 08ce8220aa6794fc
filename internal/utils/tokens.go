package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewShareToken returns an opaque hex token for wishlist share links.
func NewShareToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 16
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
