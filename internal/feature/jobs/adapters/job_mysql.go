// Package adapters provides the repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// jobMySQL is the MySQL implementation of the JobRepository interface.
type jobMySQL struct {
	db *gorm.DB
}

// Compile-time check that jobMySQL implements JobRepository.
var _ usecase.JobRepository = (*jobMySQL)(nil)

// NewJobMySQL creates a new jobMySQL repository with the given gorm.DB connection.
func NewJobMySQL(db *gorm.DB) *jobMySQL {
	return &jobMySQL{db: db}
}

// FindAll returns every job posting, newest first.
func (r *jobMySQL) FindAll(ctx context.Context) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID retrieves a job by ID.
// It returns usecase.ErrJobNotFound when no such job exists.
func (r *jobMySQL) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Create inserts a job posting into the database.
func (r *jobMySQL) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}
