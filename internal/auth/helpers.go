package auth

import (
	"errors"
	"fmt"
	"time"

	"SeatShuffler/internal/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyKey     = errors.New("signing key must not be empty")
)

const issuer = "seatshuffler"

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	key   []byte
	ttl   time.Duration
	clock clock.Clock
}

// NewTokenIssuer returns an issuer signing with key. Tokens live for ttl.
func NewTokenIssuer(key []byte, ttl time.Duration, clk clock.Clock) (*TokenIssuer, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenIssuer{key: key, ttl: ttl, clock: clk}, nil
}

// TTL returns how long issued tokens stay valid.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs a token granting role on the given session.
func (t *TokenIssuer) Issue(sessionID string, role Role) (string, error) {
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	now := t.clock.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.SessionID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
