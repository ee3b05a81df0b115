// Package handler provides the HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/transport/http/dto"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// JobUsecase defines the job operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type JobUsecase interface {
	// List returns every job posting.
	List(ctx context.Context) ([]entity.Job, error)
	// GetByID returns the job with the given ID, or usecase.ErrJobNotFound.
	GetByID(ctx context.Context, id uint) (*entity.Job, error)
	// Create persists a new job posting and returns the created record.
	Create(ctx context.Context, title, company, location string) (*entity.Job, error)
}

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler creates a new JobHandler with the given usecase.
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List handles GET /api/jobs.
// An empty board is a success with an empty sequence, never an error.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		slog.Error("job listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Failure("Server error"))
		return
	}

	// A nil slice would serialize as null; the envelope promises an array.
	out := make([]entity.Job, 0, len(jobs))
	out = append(out, jobs...)

	c.JSON(http.StatusOK, api.Success("Jobs retrieved successfully", out))
}

// GetByID handles GET /api/jobs/:id.
// The id is validated before any query: a malformed id yields 422 with the
// offending value echoed; a well-formed but absent id yields 404.
func (h *JobHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, api.Failure(fmt.Sprintf("Invalid job id: %s", idStr)))
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, api.Failure("Job not found"))
			return
		}
		slog.Error("job lookup failed", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.Failure("Server error"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Job retrieved successfully", job))
}

// Create handles POST /api/jobs. The admin middleware runs before this
// handler, so the caller is already authorized.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("job validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationFailure(api.FieldErrors(err)))
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), req.Title, req.Company, req.Location)
	if err != nil {
		slog.Error("job creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Failure("Something went wrong"))
		return
	}

	slog.Info("job created", "job_id", job.ID, "title", job.Title, "company", job.Company)
	c.JSON(http.StatusCreated, api.Success("New Job request has been created successfully.", job))
}
