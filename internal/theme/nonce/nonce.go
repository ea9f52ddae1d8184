// Package nonce issues and verifies the authenticity tokens that guard the
// theme's ajax actions. A token is an HS256 JWT bound to one action and one
// session.
package nonce

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/louisbranch/pathway/internal/platform/errors"
	"github.com/louisbranch/pathway/internal/platform/timeouts"
)

// Issuer is the iss claim of every token.
const Issuer = "pathway"

// MinKeyLength is the shortest accepted signing key in bytes.
const MinKeyLength = 32

// Config defines how tokens are signed and verified.
type Config struct {
	Key []byte
	// TTL defaults to timeouts.Nonce.
	TTL time.Duration
	Now func() time.Time
}

// Manager issues and verifies tokens.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	Action string `json:"action"`
}

// New validates cfg and returns a manager.
func New(cfg Config) (*Manager, error) {
	if len(cfg.Key) < MinKeyLength {
		return nil, fmt.Errorf("nonce key must be at least %d bytes", MinKeyLength)
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = timeouts.Nonce
	}
	if ttl < 0 {
		return nil, errors.New("nonce ttl must be positive")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{key: append([]byte(nil), cfg.Key...), ttl: ttl, now: now}, nil
}

// Issue returns a token for action bound to sessionID.
func (m *Manager) Issue(action, sessionID string) (string, error) {
	action = strings.TrimSpace(action)
	sessionID = strings.TrimSpace(sessionID)
	if action == "" {
		return "", errors.New("nonce action is required")
	}
	if sessionID == "" {
		return "", errors.New("nonce session is required")
	}
	now := m.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   sessionID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Action: action,
	})
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign nonce: %w", err)
	}
	return signed, nil
}

// Verify checks that token was issued for action and sessionID and has not
// expired. Every failure is a KindForbidden error.
func (m *Manager) Verify(token, action, sessionID string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.E(apperrors.KindForbidden, "nonce is required")
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return mapJWTError(err)
	}
	if parsed.Action == "" || parsed.Action != strings.TrimSpace(action) {
		return apperrors.E(apperrors.KindForbidden, "nonce action mismatch")
	}
	if parsed.Subject == "" || parsed.Subject != strings.TrimSpace(sessionID) {
		return apperrors.E(apperrors.KindForbidden, "nonce session mismatch")
	}
	return nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.Wrap(apperrors.KindForbidden, "nonce is expired", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperrors.Wrap(apperrors.KindForbidden, "nonce signature is invalid", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperrors.Wrap(apperrors.KindForbidden, "nonce is malformed", err)
	default:
		return apperrors.Wrap(apperrors.KindForbidden, "nonce is invalid", err)
	}
}
