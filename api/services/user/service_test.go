package userservice

import (
	"context"
	"errors"
	"io"
	repositories "leaguecatalog/api/repositories/user"
	servicetestutil "leaguecatalog/api/services/testutil"
	"leaguecatalog/internal/testutil"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/auth"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Helper to initialize the service with a mocked repository.
func setupTestService(t *testing.T) (*UserService, *servicetestutil.MockUserRepository) {
	t.Helper()

	l, err := logger.CreateLogger()
	require.NoError(t, err)
	l.SetOutput(io.Discard)
	t.Cleanup(func() { l.Close() })

	mockRepo := new(servicetestutil.MockUserRepository)
	service := &UserService{
		logger:         l,
		hashCost:       bcrypt.MinCost,
		UserRepository: mockRepo,
	}

	return service, mockRepo
}

func TestNewUserService(t *testing.T) {
	service := NewUserService(&UserServiceDeps{DB: new(gorm.DB)})
	assert.NotNil(t, service.UserRepository)
	assert.Equal(t, bcrypt.DefaultCost, service.hashCost)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("hashesPassword", func(t *testing.T) {
		service, repo := setupTestService(t)

		var stored *models.User
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.User) }).
			Return(nil)

		require.NoError(t, service.Signup(ctx, " user@example.com", "hunter2"))
		require.NotNil(t, stored)
		assert.Equal(t, "user@example.com", stored.Email)
		assert.NotEqual(t, "hunter2", stored.Password)
		assert.True(t, auth.VerifyPassword(stored.Password, "hunter2"))
		testutil.VerifyAllMocks(t, repo)
	})

	tests := []struct {
		name         string
		email        string
		password     string
		createErr    error
		expectedKind apperrors.Kind
	}{
		{name: "missingEmail", email: " ", password: "hunter2", expectedKind: apperrors.KindInvalidInput},
		{name: "missingPassword", email: "user@example.com", password: "", expectedKind: apperrors.KindInvalidInput},
		{name: "passwordTooLong", email: "user@example.com", password: strings.Repeat("a", 73), expectedKind: apperrors.KindInvalidInput},
		{name: "duplicateEmail", email: "user@example.com", password: "hunter2", createErr: repositories.ErrUserExists, expectedKind: apperrors.KindConflict},
		{name: "dbError", email: "user@example.com", password: "hunter2", createErr: errors.New(testutil.DatabaseError), expectedKind: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := setupTestService(t)
			if tt.createErr != nil {
				repo.On("Create", ctx, mock.Anything).Return(tt.createErr)
			}

			err := service.Signup(ctx, tt.email, tt.password)
			assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
			testutil.VerifyAllMocks(t, repo)
		})
	}
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, repo := setupTestService(t)
		users := []*models.User{{ID: "1", Email: "a@example.com"}, {ID: "2", Email: "b@example.com"}}
		repo.On("FindAll", ctx).Return(users, nil)

		result, err := service.ListUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, result)
	})

	t.Run("dbError", func(t *testing.T) {
		service, repo := setupTestService(t)
		repo.On("FindAll", ctx).Return(nil, errors.New(testutil.DatabaseError))

		_, err := service.ListUsers(ctx)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}
