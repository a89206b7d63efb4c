package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakm19/product-catalog-service/services"
)

func newGuardedRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(UsernameKey)})
	})
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tokens := services.NewTokenService("middleware-test-secret", 86400000)
	r := newGuardedRouter(tokens)

	token, err := tokens.Generate("admin")
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := services.NewTokenService("middleware-test-secret", 86400000)
	expiredTokens := services.NewTokenService("middleware-test-secret", -5000)

	expired, err := expiredTokens.Generate("admin")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		authorization string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic YWRtaW46YWRtaW4xMjM="},
		{"garbage token", "Bearer not-a-real-token"},
		{"expired token", "Bearer " + expired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newGuardedRouter(tokens)
			w := doGet(r, tc.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
