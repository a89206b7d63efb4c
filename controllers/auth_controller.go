package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/services"
)

// Authenticator is the slice of the auth service the controller needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

// AuthController handles login requests.
type AuthController struct {
	service Authenticator
}

func NewAuthController(service Authenticator) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Username and password are required"))
		return
	}

	result, err := ac.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		Type:      result.Type,
		ExpiresIn: result.ExpiresIn,
	})
}
