package repositories

import (
	"context"
	"errors"
	"fmt"
	"leaguecatalog/pkg/database/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserRepository is the public interface for accessing the user repository.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// userRepository repository structure.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindAll returns every user, oldest first.
func (ur *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	if err := ur.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("couldn't fetch the users: %w", err)
	}

	return users, nil
}

// FindByEmail returns the user registered with email.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("couldn't get the user by email: %w", err)
	}

	return &user, nil
}

// Create inserts the user, the password must already be hashed.
func (ur *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := ur.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}

		return fmt.Errorf("couldn't create the user: %w", err)
	}

	return nil
}
