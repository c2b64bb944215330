package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken generates a random opaque token with the given prefix.
// Format: prefix_randomhex
// Example: tm_refresh_a1b2c3d4e5f6...
func GenerateToken(prefix string) (string, error) {
	// 24 bytes keeps the full token under bcrypt's 72 byte input limit.
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b)), nil
}

// GenerateRefreshToken generates a refresh token: tm_refresh_xxx
func GenerateRefreshToken() (string, error) {
	return GenerateToken("tm_refresh")
}
