package usecase

import (
	"context"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

// JobRepository abstracts the persistence layer for job postings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type JobRepository interface {
	// FindAll retrieves every job posting. An empty result is not an error.
	FindAll(ctx context.Context) ([]entity.Job, error)

	// FindByID retrieves the job with the given ID.
	// It returns ErrJobNotFound when no such job exists.
	FindByID(ctx context.Context, id uint) (*entity.Job, error)

	// Create persists a new job posting.
	Create(ctx context.Context, job *entity.Job) error
}

// JobUsecase provides business logic for job postings.
type JobUsecase struct {
	repo JobRepository
}

// NewJobUsecase creates a new JobUsecase with the given repository.
func NewJobUsecase(r JobRepository) *JobUsecase {
	return &JobUsecase{repo: r}
}

// List returns every job posting.
func (u *JobUsecase) List(ctx context.Context) ([]entity.Job, error) {
	return u.repo.FindAll(ctx)
}

// GetByID returns the job with the given ID, or ErrJobNotFound.
func (u *JobUsecase) GetByID(ctx context.Context, id uint) (*entity.Job, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new job posting and returns it with its generated ID and timestamps.
func (u *JobUsecase) Create(ctx context.Context, title, company, location string) (*entity.Job, error) {
	job := &entity.Job{Title: title, Company: company, Location: location}
	if err := u.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}
