package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// TokenVerifier checks HS256 access tokens issued by the host application.
// The token subject is the user ID.
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewTokenVerifier creates a verifier. An empty secret disables checking.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), now: time.Now}
}

// Enabled reports whether a secret was configured.
func (v *TokenVerifier) Enabled() bool { return len(v.secret) > 0 }

// Verify parses a bearer token and returns its subject.
func (v *TokenVerifier) Verify(raw string) (string, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return "", &domain.ErrUnauthorized{Message: "Token de acesso ausente"}
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil || !token.Valid {
		return "", &domain.ErrUnauthorized{Message: "Token de acesso inválido ou expirado"}
	}
	if claims.Subject == "" {
		return "", &domain.ErrUnauthorized{Message: "Token sem usuário"}
	}
	return claims.Subject, nil
}
