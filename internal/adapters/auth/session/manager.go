package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-collector/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer     = "cat-collector"
	DefaultTTL = 7 * 24 * time.Hour

	minSecretLen = 32
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrSecretTooWeak = fmt.Errorf("session secret must be at least %d bytes", minSecretLen)
)

type sessionClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Manager emite y valida tokens de sesión HS256.
// Implementa auth.AuthVerifier y auth.TokenIssuer.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if len(secret) < minSecretLen {
		return nil, ErrSecretTooWeak
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, time.Time, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return "", time.Time{}, errors.New("claims missing user id")
	}

	now := m.now().UTC()
	exp := now.Add(m.ttl)
	claims := sessionClaims{
		Username: c.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify session: %w", err)
	}

	uid := strings.TrimSpace(parsed.Subject)
	if uid == "" {
		return auth.Claims{}, errors.New("session missing subject")
	}
	return auth.Claims{UserID: uid, Username: parsed.Username}, nil
}
