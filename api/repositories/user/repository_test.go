package repositories

import (
	"context"
	"leaguecatalog/internal/testutil"
	"leaguecatalog/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewUserRepository(t *testing.T) {
	repository := NewUserRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestUserLifecycle(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewUserRepository(db)
	ctx := context.Background()

	users, err := repository.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	user := &models.User{Email: "faker@t1.gg", Password: "hashed"}
	require.NoError(t, repository.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	err = repository.Create(ctx, &models.User{Email: "faker@t1.gg", Password: "other"})
	assert.ErrorIs(t, err, ErrUserExists)

	found, err := repository.FindByEmail(ctx, "faker@t1.gg")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hashed", found.Password)

	_, err = repository.FindByEmail(ctx, "missing@t1.gg")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, repository.Create(ctx, &models.User{Email: "zeus@t1.gg", Password: "hashed"}))

	users, err = repository.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "faker@t1.gg", users[0].Email)
}
