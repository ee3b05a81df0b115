package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard_backend/internal/feature/applications/domain/entity"
	jobentity "jobboard_backend/internal/feature/jobs/domain/entity"
	jobusecase "jobboard_backend/internal/feature/jobs/usecase"
)

// ApplicationRepository abstracts the persistence layer for applications.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, app *entity.Application) error

	// FindByEmailAndJobID retrieves the application a given email submitted
	// for a given job. It returns ErrApplicationNotFound when none exists.
	FindByEmailAndJobID(ctx context.Context, email string, jobID uint) (*entity.Application, error)
}

// JobFinder looks up job postings. It matches the jobs feature's repository
// signature so the same adapter satisfies both.
type JobFinder interface {
	FindByID(ctx context.Context, id uint) (*jobentity.Job, error)
}

// ApplicationUsecase provides business logic for job applications.
type ApplicationUsecase struct {
	apps ApplicationRepository
	jobs JobFinder
}

// NewApplicationUsecase creates a new ApplicationUsecase.
func NewApplicationUsecase(apps ApplicationRepository, jobs JobFinder) *ApplicationUsecase {
	return &ApplicationUsecase{apps: apps, jobs: jobs}
}

// Create submits an application. The referenced job must exist and the
// (email, job) pair must not have applied before; both checks run before the
// write. Two racing submissions for the same pair can both pass the check —
// an accepted limitation, there is no transaction here.
func (u *ApplicationUsecase) Create(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	if _, err := u.jobs.FindByID(ctx, app.JobID); err != nil {
		if errors.Is(err, jobusecase.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}

	_, err := u.apps.FindByEmailAndJobID(ctx, app.ApplicantEmail, app.JobID)
	switch {
	case err == nil:
		return nil, ErrDuplicateApplication
	case !errors.Is(err, ErrApplicationNotFound):
		return nil, fmt.Errorf("failed to check for duplicate application: %w", err)
	}

	if err := u.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
