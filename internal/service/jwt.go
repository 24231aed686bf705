package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GunarsK-portfolio/user-service/internal/models"
)

// DefaultTokenTTL is the lifetime of issued access tokens.
const DefaultTokenTTL = 60 * time.Minute

// minSecretLength is the minimum accepted signing secret size in bytes.
const minSecretLength = 32

// Claims represents the signed payload of an access token.
//
// Role and Active state are re-checked against the database on every
// request (see AuthService.Resolve); the embedded role exists for clients
// that want to inspect the token, not for authorization decisions.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and decodes signed access tokens.
type TokenService interface {
	// Issue signs a token for the given identity with the default TTL.
	Issue(userID int64, email string, role models.Role) (string, error)
	// IssueWithTTL signs a token with an explicit TTL.
	IssueWithTTL(userID int64, email string, role models.Role, ttl time.Duration) (string, error)
	// Decode verifies signature and expiry. It returns ok=false for any
	// malformed, tampered or expired token and never panics on
	// attacker-controlled input.
	Decode(tokenString string) (claims *Claims, ok bool)
	// TTL returns the configured default token lifetime.
	TTL() time.Duration
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// The secret is required configuration with no fallback and must be at
// least 32 bytes.
func NewTokenService(secret string, ttl time.Duration) (TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, errors.New("jwt secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &tokenService{secret: []byte(secret), ttl: ttl}, nil
}

func (s *tokenService) Issue(userID int64, email string, role models.Role) (string, error) {
	return s.IssueWithTTL(userID, email, role, s.ttl)
}

func (s *tokenService) IssueWithTTL(userID int64, email string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Decode(tokenString string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, false
	}
	return claims, true
}

func (s *tokenService) TTL() time.Duration {
	return s.ttl
}
