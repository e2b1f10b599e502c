package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// Principal represents the authenticated caller decoded from a token.
type Principal struct {
	ID    kernel.ID
	Email string
	Name  string
	Role  kernel.Role
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the principal from context, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a session token for the principal.
func (s *TokenService) Issue(p Principal) (string, error) {
	if err := errors.Join(p.ID.Validate(), p.Role.Validate()); err != nil {
		return "", err
	}

	now := s.now()
	claims := sessionClaims{
		Email: p.Email,
		Name:  p.Name,
		Role:  p.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the token signature and expiry and returns the
// principal it was issued for.
func (s *TokenService) Parse(tokenStr string) (*Principal, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errs.NewUnauthorizedError("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errs.NewUnauthorizedError("invalid token")
	}

	claims, ok := tok.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return nil, errs.NewUnauthorizedError("invalid claims")
	}

	role := kernel.Role(claims.Role)
	if err = role.Validate(); err != nil {
		return nil, errs.NewUnauthorizedError("invalid role")
	}

	return &Principal{
		ID:    kernel.ID(claims.Subject),
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}, nil
}
