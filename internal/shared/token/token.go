package token

import (
	"errors"
	"net/http"
	"time"

	"face-attendance/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// The two failure modes are deliberately distinct: a request without a token
// is unauthenticated (401), a request with a bad or expired token is
// forbidden (403). Callers rely on that split.
var (
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized: No token provided",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeForbidden,
		"Forbidden: Invalid token",
		http.StatusForbidden,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeForbidden,
		"Forbidden: Token expired",
		http.StatusForbidden,
	)
)

type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies access tokens with a single HMAC secret
// injected at startup.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(id, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
