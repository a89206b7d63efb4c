package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/services"
)

// UsernameKey is the gin context key holding the authenticated username.
const UsernameKey = "username"

// RequireAuth guards routes behind a bearer token. The verified subject is
// stored in the request context for downstream handlers.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.Respond(c, &apperrors.Error{
				Status:  401,
				Label:   "Unauthorized",
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		username, err := tokens.ExtractUsername(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.Respond(c, &apperrors.Error{
				Status:  401,
				Label:   "Unauthorized",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
