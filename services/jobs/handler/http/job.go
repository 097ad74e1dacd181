package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/jobs"
)

// JobHandler handles HTTP requests for job operations
type JobHandler struct {
	jobUC jobs.JobUC
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobUC jobs.JobUC) *JobHandler {
	return &JobHandler{
		jobUC: jobUC,
	}
}

// CreateJob handles job submission by customers
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor := middleware.ActorFromContext(c)
	job, err := h.jobUC.CreateJob(c.Request().Context(), actor, req)
	if err != nil {
		return h.mapJobError(c, err, "Failed to create job")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Job created successfully", job)
}

// ListJobs returns every job; the route is admin-gated
func (h *JobHandler) ListJobs(c echo.Context) error {
	return h.listForActor(c)
}

// ListMyJobs returns the calling customer's jobs
func (h *JobHandler) ListMyJobs(c echo.Context) error {
	return h.listForActor(c)
}

// ListAssignedJobs returns jobs assigned to the calling driver
func (h *JobHandler) ListAssignedJobs(c echo.Context) error {
	return h.listForActor(c)
}

// listForActor serves all three list endpoints: the usecase scopes the query
// by the caller's role, the routes only differ in which role they admit.
func (h *JobHandler) listForActor(c echo.Context) error {
	status := models.JobStatus(c.QueryParam("status"))

	actor := middleware.ActorFromContext(c)
	list, err := h.jobUC.ListJobs(c.Request().Context(), actor, status)
	if err != nil {
		return h.mapJobError(c, err, "Failed to list jobs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Jobs retrieved successfully", list)
}

// GetJob returns a single job, scope-checked in the usecase
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}

	actor := middleware.ActorFromContext(c)
	job, err := h.jobUC.GetJob(c.Request().Context(), actor, id)
	if err != nil {
		return h.mapJobError(c, err, "Failed to get job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved successfully", job)
}

// AssignJob binds a driver and truck to a pending job
func (h *JobHandler) AssignJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}

	var req models.AssignJobRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor := middleware.ActorFromContext(c)
	job, err := h.jobUC.AssignJob(c.Request().Context(), actor, id, req)
	if err != nil {
		return h.mapJobError(c, err, "Failed to assign job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job assigned successfully", job)
}

// UpdateJobStatus advances a job along its lifecycle
func (h *JobHandler) UpdateJobStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}

	var req models.UpdateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor := middleware.ActorFromContext(c)
	job, err := h.jobUC.UpdateJobStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return h.mapJobError(c, err, "Failed to update job status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job status updated successfully", job)
}

func (h *JobHandler) mapJobError(c echo.Context, err error, fallback string) error {
	var vErr *jobs.ValidationError
	switch {
	case errors.As(err, &vErr):
		return utils.BadRequestResponse(c, vErr.Reason)
	case errors.Is(err, jobs.ErrJobNotFound):
		return utils.NotFoundResponse(c, "Job not found")
	case errors.Is(err, jobs.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	case errors.Is(err, jobs.ErrTruckNotFound):
		return utils.NotFoundResponse(c, "Truck not found")
	case errors.Is(err, jobs.ErrAlreadyAssigned):
		return utils.ConflictResponse(c, "Job already assigned")
	case errors.Is(err, jobs.ErrAssignConflict):
		return utils.ConflictResponse(c, "Job cannot be assigned in its current state")
	case errors.Is(err, jobs.ErrIllegalTransition):
		return utils.ConflictResponse(c, "Illegal status transition")
	case errors.Is(err, jobs.ErrForbidden):
		return utils.ForbiddenResponse(c, "Operation not allowed")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
