package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs/handler/http"
)

// Handler coordinates the HTTP handlers for the job service
type Handler struct {
	jobHandler *http.JobHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(jobHandler *http.JobHandler, cfg *models.Config) *Handler {
	return &Handler{
		jobHandler: jobHandler,
		cfg:        cfg,
	}
}

// RegisterRoutes registers job routes with Echo
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/jobs")
	group.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	group.POST("", h.jobHandler.CreateJob, middleware.RequireRoles(models.RoleCustomer))
	group.GET("", h.jobHandler.ListJobs, middleware.RequireRoles(models.RoleAdmin))
	group.GET("/my-jobs", h.jobHandler.ListMyJobs, middleware.RequireRoles(models.RoleCustomer))
	group.GET("/assigned", h.jobHandler.ListAssignedJobs, middleware.RequireRoles(models.RoleDriver))
	group.GET("/:id", h.jobHandler.GetJob)
	group.PUT("/:id/assign", h.jobHandler.AssignJob, middleware.RequireRoles(models.RoleAdmin))
	group.PUT("/:id/status", h.jobHandler.UpdateJobStatus,
		middleware.RequireRoles(models.RoleAdmin, models.RoleDriver))
}
