package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
)

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: uuid.New(), Username: username, Password: string(hash)}
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	tokens := NewTokenService(testSecret, 86400000)
	svc := NewAuthService(users, tokens)

	user := newTestUser(t, "admin", "admin123")
	users.On("FindByUsername", ctx, "admin").Return(user, nil).Once()

	result, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", result.Type)
	assert.Equal(t, int64(86400), result.ExpiresIn)
	assert.True(t, tokens.Validate(result.Token, "admin"))

	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	svc := NewAuthService(users, NewTokenService(testSecret, 86400000))

	user := newTestUser(t, "admin", "admin123")
	users.On("FindByUsername", ctx, "admin").Return(user, nil).Once()

	result, err := svc.Login(ctx, "admin", "wrong-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	svc := NewAuthService(users, NewTokenService(testSecret, 86400000))

	users.On("FindByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound).Once()

	result, err := svc.Login(ctx, "ghost", "whatever")
	assert.Nil(t, result)
	// Unknown user and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
