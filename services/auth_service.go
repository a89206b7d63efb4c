package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// LoginResult is what a successful login produces.
type LoginResult struct {
	Token     string
	Type      string
	ExpiresIn int64
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the username and password against the credential store and
// returns a signed token. Every failure collapses to the same generic
// error so callers cannot tell an unknown user from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Debug("Login failed: user lookup", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		zap.L().Debug("Login failed: password mismatch", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		zap.L().Error("Failed to generate token", zap.Error(err))
		return nil, err
	}

	zap.L().Info("User authenticated", zap.String("username", user.Username))
	return &LoginResult{
		Token:     token,
		Type:      "Bearer",
		ExpiresIn: s.tokens.ExpiresInSeconds(),
	}, nil
}
