package auth

import (
	"fmt"
	"time"

	"cadet-corps-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in the bearer token. Subject is the identity provider's
// opaque user identifier; the rest are display attributes.
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
	AvatarURL   string `json:"picture,omitempty"`
}

// Service validates and issues HS256 bearer tokens
type Service struct {
	secret []byte
}

// NewService creates a new auth service
func NewService(cfg *config.Config) *Service {
	return &Service{secret: []byte(cfg.JWTSecret)}
}

// ValidateToken parses and verifies a bearer token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// IssueToken signs a token for the given subject. Used by tests and local
// development; production tokens come from the external identity provider.
func (s *Service) IssueToken(subject, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:       email,
		DisplayName: name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
