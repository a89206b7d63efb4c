package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/services"
)

// fakeAuthenticator accepts exactly one username/password pair.
type fakeAuthenticator struct {
	username string
	password string
}

func (f *fakeAuthenticator) Login(_ context.Context, username, password string) (*services.LoginResult, error) {
	if username != f.username || password != f.password {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &services.LoginResult{Token: "issued-token", Type: "Bearer", ExpiresIn: 86400}, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(&fakeAuthenticator{username: "admin", password: "admin123"})

	r := gin.New()
	r.POST("/api/v1/auth/login", controller.Login)
	return r
}

func TestLoginReturnsToken(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, "Bearer", resp.Type)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var envelope apperrors.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusUnauthorized, envelope.Status)
	assert.Equal(t, "Unauthorized", envelope.Label)
	assert.Equal(t, "Invalid username or password", envelope.Message)
	assert.Equal(t, "/api/v1/auth/login", envelope.Path)
}

func TestLoginRequiresBothFields(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]string
	}{
		{"missing password", map[string]string{"username": "admin"}},
		{"missing username", map[string]string{"password": "admin123"}},
		{"empty body", map[string]string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAuthRouter()
			w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
