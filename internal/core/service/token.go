package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/memento-app/memento-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService signs and verifies the HS256 bearer tokens used by the API.
// Tokens embed the user ID under the "id" claim; expiry is the only
// invalidation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for userID expiring after the configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates raw, returning the embedded user ID. Any
// failure (bad signature, malformed structure, expired, wrong algorithm)
// collapses to domain.ErrInvalidToken.
func (s *TokenService) Verify(raw string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
