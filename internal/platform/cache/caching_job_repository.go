// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// CachingJobRepository decorates a JobRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingJobRepository struct {
	inner     usecase.JobRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingJobRepository decorates a JobRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "jobs".
func NewCachingJobRepository(rdb *redis.Client, ttl time.Duration, inner usecase.JobRepository, namespace string) *CachingJobRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "jobs"
	}
	return &CachingJobRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll retrieves every job, checking cache first then falling back to the database.
func (c *CachingJobRepository) FindAll(ctx context.Context) ([]entity.Job, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Job
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves a job by ID, checking cache first. Misses in the
// underlying repository (including not-found) are never cached.
func (c *CachingJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Job
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create persists a job and invalidates the cached listing.
func (c *CachingJobRepository) Create(ctx context.Context, job *entity.Job) error {
	// First persist to the underlying repository
	if err := c.inner.Create(ctx, job); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Best effort: don't fail the write if cache invalidation fails
	_ = c.rdb.Del(ctx, c.listKey()).Err()
	return nil
}

// listKey is the cache key for the full job listing.
func (c *CachingJobRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

// idKey is the cache key for a single job.
func (c *CachingJobRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
