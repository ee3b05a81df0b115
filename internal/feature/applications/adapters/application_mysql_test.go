package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Application{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestApplicationMySQL_Create(t *testing.T) {
	t.Run("sets generated ID and timestamps", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationMySQL(db)

		app := &entity.Application{
			ApplicantName:  "Jane Doe",
			ApplicantEmail: "jane@example.com",
			JobID:          7,
			ResumeURL:      "https://example.com/cv.pdf",
		}

		err := repo.Create(context.Background(), app)

		assert.NoError(t, err, "failed to create application")
		assert.NotZero(t, app.ID, "ID is not set")
		assert.False(t, app.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, app.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("resume URL is optional", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationMySQL(db)

		app := &entity.Application{
			ApplicantName:  "Jane Doe",
			ApplicantEmail: "jane@example.com",
			JobID:          7,
		}

		err := repo.Create(context.Background(), app)

		assert.NoError(t, err, "failed to create application without resume")
	})
}

func TestApplicationMySQL_FindByEmailAndJobID(t *testing.T) {
	t.Run("finds the matching pair", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationMySQL(db)

		seed := []*entity.Application{
			{ApplicantName: "Jane", ApplicantEmail: "jane@example.com", JobID: 7},
			{ApplicantName: "Jane", ApplicantEmail: "jane@example.com", JobID: 8},
			{ApplicantName: "John", ApplicantEmail: "john@example.com", JobID: 7},
		}
		for _, a := range seed {
			require.NoError(t, repo.Create(context.Background(), a), "failed to seed application")
		}

		found, err := repo.FindByEmailAndJobID(context.Background(), "jane@example.com", 7)

		assert.NoError(t, err, "failed to find application")
		require.NotNil(t, found, "application is nil")
		assert.Equal(t, seed[0].ID, found.ID, "ID does not match")
		assert.Equal(t, uint(7), found.JobID, "job id does not match")
	})

	t.Run("no match yields ErrApplicationNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationMySQL(db)

		found, err := repo.FindByEmailAndJobID(context.Background(), "nobody@example.com", 7)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "application should be nil")
		assert.ErrorIs(t, err, usecase.ErrApplicationNotFound, "should return ErrApplicationNotFound")
	})

	t.Run("same email on a different job is not a match", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationMySQL(db)

		app := &entity.Application{ApplicantName: "Jane", ApplicantEmail: "jane@example.com", JobID: 7}
		require.NoError(t, repo.Create(context.Background(), app), "failed to seed application")

		found, err := repo.FindByEmailAndJobID(context.Background(), "jane@example.com", 8)

		assert.ErrorIs(t, err, usecase.ErrApplicationNotFound)
		assert.Nil(t, found)
	})
}
