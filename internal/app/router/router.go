// Package router assembles the Gin engine and route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apphandler "jobboard_backend/internal/feature/applications/transport/handler"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	platformhandler "jobboard_backend/internal/platform/http/handler"
)

// NewRouter wires middleware and mounts every route. adminRequired guards the
// job-creation endpoint; everything else is public.
func NewRouter(
	authH *authhandler.AuthHandler,
	jobH *jobhandler.JobHandler,
	appH *apphandler.ApplicationHandler,
	adminRequired gin.HandlerFunc,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()
	r.Use(newCORS(allowedOrigins))

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authH.Login)

		api.GET("/jobs", jobH.List)
		api.GET("/jobs/:id", jobH.GetByID)
		// Only admins can post new jobs
		api.POST("/jobs", adminRequired, jobH.Create)

		api.POST("/applications", appH.Create)
	}

	return r
}

// newCORS builds the CORS middleware for the configured origins.
func newCORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}
