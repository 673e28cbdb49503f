package handlers

import (
	"context"
	"leaguecatalog/api/dto"
	"leaguecatalog/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Login(ctx context.Context, email string, password string) (string, error)
}

// AuthHandler is the handler for the authentication endpoints.
type AuthHandler struct {
	AuthService AuthService
}

type AuthHandlerDependencies struct {
	AuthService AuthService
}

// NewAuthHandler creates a new instance of the auth handler.
func NewAuthHandler(deps *AuthHandlerDependencies) *AuthHandler {
	return &AuthHandler{
		AuthService: deps.AuthService,
	}
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body dto.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.CredentialsRequired})
		return
	}

	token, err := h.AuthService.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
