// Package usecase implements the business logic for the applications feature.
package usecase

import "errors"

var (
	// ErrApplicationNotFound is returned when no application matches the lookup.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrJobNotFound is returned when the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrDuplicateApplication is returned when the same email already applied for the same job.
	ErrDuplicateApplication = errors.New("already applied for this job")
)
