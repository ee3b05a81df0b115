// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	jobadapters "jobboard_backend/internal/feature/jobs/adapters"
	jobusecase "jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/cache"
)

// NewJobRepository creates a JobRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a Redis cache.
// Otherwise the plain repository is returned.
func NewJobRepository(rdb *redis.Client, db *gorm.DB) jobusecase.JobRepository {
	inner := jobadapters.NewJobMySQL(db)
	if rdb != nil {
		return cache.NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	}
	return inner
}
