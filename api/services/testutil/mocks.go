package testutil

import (
	"context"
	"io"
	"leaguecatalog/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mock Implementations used on the Champion service tests.
// ============================================================================

type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) FindPage(ctx context.Context, offset int, limit int) ([]*models.Champion, error) {
	args := m.Called(ctx, offset, limit)
	champions, _ := args.Get(0).([]*models.Champion)
	return champions, args.Error(1)
}

func (m *MockChampionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChampionRepository) FindByName(ctx context.Context, name string) (*models.Champion, error) {
	args := m.Called(ctx, name)
	champion, _ := args.Get(0).(*models.Champion)
	return champion, args.Error(1)
}

func (m *MockChampionRepository) Create(ctx context.Context, champion *models.Champion) error {
	args := m.Called(ctx, champion)
	return args.Error(0)
}

func (m *MockChampionRepository) Update(ctx context.Context, name string, champion *models.Champion) error {
	args := m.Called(ctx, name, champion)
	return args.Error(0)
}

func (m *MockChampionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Blob store mock.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	if urlFor, ok := args.Get(0).(func(context.Context, string, any, int64, string) string); ok {
		return urlFor(ctx, key, body, size, contentType), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) KeyFromURL(url string) (string, error) {
	args := m.Called(url)
	return args.String(0), args.Error(1)
}

// Mutation lock mock, the release function counts how many times it was called.
type MockLocker struct {
	mock.Mock
	Released int
}

func (m *MockLocker) Acquire(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	return func() { m.Released++ }, nil
}

// ============================================================================
// Mock Implementations used on the User and Auth service tests.
// ============================================================================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
