// Package token issues and verifies stateless session tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("session token has expired")

	// ErrInvalidToken is returned when a token fails signature or claim
	// validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid session token")
)

// Service signs and verifies session tokens. Tokens are self-contained:
// the server keeps no session table, so a token stays valid until its
// natural expiry. The signing secret and validity window are injected at
// construction.
type Service struct {
	secret    string
	issuer    string
	expiresIn time.Duration
}

// NewService creates a new Service instance.
func NewService(secret, issuer string, expiresIn time.Duration) *Service {
	return &Service{
		secret:    secret,
		issuer:    issuer,
		expiresIn: expiresIn,
	}
}

// Issue generates a signed session token for the given user ID.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		NotBefore: jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

// Verify validates a session token and returns the user ID it carries.
func (s *Service) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
