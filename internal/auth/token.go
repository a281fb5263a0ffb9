package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a missing, malformed, or unverifiable access token.
var ErrInvalidToken = errors.New("invalid access token")

// TokenManager validates bearer access tokens minted by the identity layer.
// Issuance lives there; this side only checks signatures and extracts the
// subject user id.
type TokenManager struct {
	key []byte
}

// NewTokenManager builds a TokenManager around the shared HMAC key.
func NewTokenManager(key string) *TokenManager {
	return &TokenManager{key: []byte(key)}
}

type accessClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// VerifyAccessToken checks the token signature and returns the user id it
// was issued for.
func (m *TokenManager) VerifyAccessToken(tokenString string) (string, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
