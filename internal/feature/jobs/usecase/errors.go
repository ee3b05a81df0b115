// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

// ErrJobNotFound is returned when no job exists with the requested ID.
var ErrJobNotFound = errors.New("job not found")
