package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the custom claims carried by console access tokens.
// SessionID references the SellerSession the token belongs to; the
// backend access token is resolved from that session, never embedded.
type SessionClaims struct {
	SessionID string `json:"sid"`
	SellerID  string `json:"sellerId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed console access token for a session.
func GenerateJWT(sessionID, sellerID, email string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		SellerID:  sellerID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "console_api",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateJWT parses and validates a console access token.
func ValidateJWT(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
