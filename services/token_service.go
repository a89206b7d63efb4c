package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService creates and validates signed bearer tokens. The signing
// secret and TTL are injected from configuration rather than read from
// ambient state so the service can be constructed per deployment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. ttlMillis is the token lifetime in
// milliseconds.
func NewTokenService(secret string, ttlMillis int64) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMillis) * time.Millisecond,
	}
}

// Generate signs a token carrying the username as subject, issued now and
// expiring after the configured TTL.
func (s *TokenService) Generate(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ExtractUsername parses and verifies the token, returning its subject.
// Malformed, tampered and expired tokens all fail the same way.
func (s *TokenService) ExtractUsername(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("token has no subject")
	}
	return subject, nil
}

// Validate reports whether the token is valid for the given username:
// signature verified, subject matching, expiry in the future.
func (s *TokenService) Validate(tokenStr, username string) bool {
	subject, err := s.ExtractUsername(tokenStr)
	if err != nil {
		return false
	}
	return subject == username
}

// ExpiresInSeconds returns the configured token lifetime in seconds, as
// reported in the login response.
func (s *TokenService) ExpiresInSeconds() int64 {
	return int64(s.ttl / time.Second)
}
