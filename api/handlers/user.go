package handlers

import (
	"context"
	"leaguecatalog/api/dto"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserService interface {
	Signup(ctx context.Context, email string, password string) error
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserHandler is the handler for the user endpoints.
type UserHandler struct {
	UserService UserService
}

type UserHandlerDependencies struct {
	UserService UserService
}

// NewUserHandler creates a new instance of the user handler.
func NewUserHandler(deps *UserHandlerDependencies) *UserHandler {
	return &UserHandler{
		UserService: deps.UserService,
	}
}

// ListUsers returns every registered user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Signup registers a new user.
func (h *UserHandler) Signup(c *gin.Context) {
	var body dto.SignupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidRequest})
		return
	}

	if err := h.UserService.Signup(c.Request.Context(), body.Email, body.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": messages.UserCreated})
}
