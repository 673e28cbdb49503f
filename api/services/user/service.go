package userservice

import (
	"context"
	"errors"
	repositories "leaguecatalog/api/repositories/user"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/auth"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/messages"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// UserService handles signups and the user listing.
type UserService struct {
	logger         Logger
	hashCost       int
	UserRepository repositories.UserRepository
}

// UserServiceDeps is the dependency list for the user service.
type UserServiceDeps struct {
	DB       *gorm.DB
	Logger   Logger
	HashCost int // Defaults to bcrypt.DefaultCost.
}

// NewUserService creates a user service.
func NewUserService(deps *UserServiceDeps) *UserService {
	cost := deps.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &UserService{
		logger:         deps.Logger,
		hashCost:       cost,
		UserRepository: repositories.NewUserRepository(deps.DB),
	}
}

// Signup stores a new user with its password hashed.
func (us *UserService) Signup(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return apperrors.InvalidInput(messages.CredentialsRequired)
	}

	hashed, err := auth.HashPassword(password, us.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return apperrors.InvalidInput(messages.PasswordTooLong)
	}
	if err != nil {
		us.logger.Errorf("Couldn't hash password: %v", err)
		return apperrors.Internal(messages.FailedToCreateUser, err)
	}

	if err := us.UserRepository.Create(ctx, &models.User{Email: email, Password: hashed}); err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			return apperrors.Conflict(messages.UserExists)
		}

		us.logger.Errorf("Couldn't create user: %v", err)
		return apperrors.Internal(messages.FailedToCreateUser, err)
	}

	us.logger.Infof("User %s signed up", email)
	return nil
}

// ListUsers returns every user. Passwords are never serialized.
func (us *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := us.UserRepository.FindAll(ctx)
	if err != nil {
		us.logger.Errorf("Couldn't list users: %v", err)
		return nil, apperrors.Internal(messages.FailedToFetchUsers, err)
	}

	return users, nil
}
