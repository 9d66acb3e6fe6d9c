package jwt

import (
	"dentsched/config"
	"dentsched/shared/timezone"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("authorization header must carry a bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const bearerPrefix = "Bearer "

// Identity is who a token speaks for. TenantID is empty only for superadmins.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
}

// Claims are HS256 access-token claims. Tokens normally come from the
// clinic's identity provider and this service only verifies them.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

type JWT interface {
	Issue(id Identity) (string, error)
	Verify(token string) (*Claims, error)
}

type service struct {
	issuer string
	secret []byte
	ttl    time.Duration
}

func New(cfg *config.Config) JWT {
	return &service{
		issuer: cfg.App.Name,
		secret: []byte(cfg.JWT.AccessSecret),
		ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
	}
}

// Issue signs an access token for operator tooling and tests.
func (s *service) Issue(id Identity) (string, error) {
	now := timezone.Now()

	claims := Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and lifetime and requires a subject.
func (s *service) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, claims.UserID == "":
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	return strings.TrimSpace(token), nil
}
