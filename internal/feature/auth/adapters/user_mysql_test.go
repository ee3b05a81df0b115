package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/auth/domain/entity"
	"jobboard_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "admin",
			Password: "hashed_password",
			IsAdmin:  true,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Username: "admin", Password: "password1"}
		require.NoError(t, repo.Create(context.Background(), user1), "failed to create first user")

		user2 := &entity.User{Username: "admin", Password: "password2"}
		err := repo.Create(context.Background(), user2)

		assert.Error(t, err, "should return duplicate error")
	})
}

func TestUserMySQL_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{
			Username: "admin",
			Password: "hashed_password",
			IsAdmin:  true,
		}
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByUsername(context.Background(), "admin")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "admin", found.Username, "username does not match")
		assert.True(t, found.IsAdmin, "admin flag does not match")
	})

	t.Run("username not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("admin flag defaults to false", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{Username: "normal", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), user), "failed to create test data")

		found, err := repo.FindByUsername(context.Background(), "normal")

		require.NoError(t, err, "failed to find user")
		assert.False(t, found.IsAdmin, "admin flag should default to false")
	})
}
