// Package adapters provides the repository implementations for the applications feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/usecase"
)

// applicationMySQL is the MySQL implementation of the ApplicationRepository interface.
type applicationMySQL struct {
	db *gorm.DB
}

// Compile-time check that applicationMySQL implements ApplicationRepository.
var _ usecase.ApplicationRepository = (*applicationMySQL)(nil)

// NewApplicationMySQL creates a new applicationMySQL repository with the given gorm.DB connection.
func NewApplicationMySQL(db *gorm.DB) *applicationMySQL {
	return &applicationMySQL{db: db}
}

// Create inserts an application into the database.
func (r *applicationMySQL) Create(ctx context.Context, app *entity.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// FindByEmailAndJobID retrieves the application a given email submitted for a
// given job. It returns usecase.ErrApplicationNotFound when none exists.
func (r *applicationMySQL) FindByEmailAndJobID(ctx context.Context, email string, jobID uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.db.WithContext(ctx).
		Where("applicant_email = ? AND job_id = ?", email, jobID).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}
