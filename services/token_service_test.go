package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret-for-unit-tests"

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, 86400000)

	token, err := svc.Generate("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Validate(token, "admin"), "token should validate for its own subject")
	assert.False(t, svc.Validate(token, "user"), "token should not validate for another user")

	username, err := svc.ExtractUsername(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	svc := NewTokenService(testSecret, -5000)

	token, err := svc.Generate("admin")
	require.NoError(t, err)

	assert.False(t, svc.Validate(token, "admin"))

	_, err = svc.ExtractUsername(token)
	assert.Error(t, err)
}

func TestWrongSecretIsInvalid(t *testing.T) {
	issuer := NewTokenService(testSecret, 86400000)
	verifier := NewTokenService("a-completely-different-secret", 86400000)

	token, err := issuer.Generate("admin")
	require.NoError(t, err)

	assert.False(t, verifier.Validate(token, "admin"))
}

func TestMalformedTokenIsInvalid(t *testing.T) {
	svc := NewTokenService(testSecret, 86400000)

	assert.False(t, svc.Validate("not-a-token", "admin"))
	assert.False(t, svc.Validate("", "admin"))
	assert.False(t, svc.Validate("aaaa.bbbb.cccc", "admin"))
}

func TestExpiresInSeconds(t *testing.T) {
	svc := NewTokenService(testSecret, 86400000)
	assert.Equal(t, int64(86400), svc.ExpiresInSeconds())
}
