// Package handler provides the HTTP handlers for the applications feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/transport/http/dto"
	"jobboard_backend/internal/feature/applications/usecase"
)

// ApplicationUsecase defines the application operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ApplicationUsecase interface {
	// Create submits an application after the job-existence and duplicate checks.
	Create(ctx context.Context, app *entity.Application) (*entity.Application, error)
}

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	apps ApplicationUsecase
}

// NewApplicationHandler creates a new ApplicationHandler with the given usecase.
func NewApplicationHandler(apps ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("application validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationFailure(api.FieldErrors(err)))
		return
	}

	app, err := h.apps.Create(c.Request.Context(), &entity.Application{
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		JobID:          req.JobID,
		ResumeURL:      req.ResumeURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, api.Failure("Job not found"))
		case errors.Is(err, usecase.ErrDuplicateApplication):
			c.JSON(http.StatusConflict, api.Failure("You have already applied for this job."))
		default:
			slog.Error("application submission failed", "job_id", req.JobID, "error", err)
			c.JSON(http.StatusInternalServerError, api.Failure("Internal server error"))
		}
		return
	}

	slog.Info("application submitted", "application_id", app.ID, "job_id", app.JobID)
	c.JSON(http.StatusCreated, api.Success("Job Application submitted successfully.", app))
}
