package authservice

import (
	"context"
	"errors"
	repositories "leaguecatalog/api/repositories/user"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/auth"
	"leaguecatalog/pkg/messages"
	"strings"

	"gorm.io/gorm"
)

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// AuthService authenticates users and issues their access tokens.
type AuthService struct {
	logger         Logger
	tokens         *auth.TokenManager
	UserRepository repositories.UserRepository
}

// AuthServiceDeps is the dependency list for the auth service.
type AuthServiceDeps struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
	Logger Logger
}

// NewAuthService creates an auth service.
func NewAuthService(deps *AuthServiceDeps) *AuthService {
	return &AuthService{
		logger:         deps.Logger,
		tokens:         deps.Tokens,
		UserRepository: repositories.NewUserRepository(deps.DB),
	}
}

// Login checks the credentials and returns a signed access token.
// Unknown emails and wrong passwords fail the exact same way.
func (as *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := as.UserRepository.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			as.logger.Errorf("Couldn't fetch user for login: %v", err)
			return "", apperrors.Internal(messages.FailedToLogin, err)
		}

		auth.BurnPasswordCheck(password)
		return "", apperrors.Unauthorized(messages.InvalidCredentials)
	}

	if !auth.VerifyPassword(user.Password, password) {
		return "", apperrors.Unauthorized(messages.InvalidCredentials)
	}

	token, err := as.tokens.Issue(user.ID)
	if err != nil {
		as.logger.Errorf("Couldn't issue token for user %s: %v", user.ID, err)
		return "", apperrors.Internal(messages.FailedToLogin, err)
	}

	return token, nil
}

// ParseAccessToken returns the user id of a valid token.
func (as *AuthService) ParseAccessToken(token string) (string, error) {
	userID, err := as.tokens.Parse(token)
	if err != nil {
		return "", apperrors.Unauthorized(messages.InvalidToken)
	}

	return userID, nil
}
