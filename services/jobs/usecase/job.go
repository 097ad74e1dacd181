package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/jobs"
)

// CreateJob validates the form and creates a pending job owned by the caller.
func (uc *JobUC) CreateJob(ctx context.Context, actor models.Actor, req models.CreateJobRequest) (*models.Job, error) {
	if err := validateCreateJob(req); err != nil {
		return nil, err
	}

	job := &models.Job{
		OwnerID:        actor.ID,
		Pickup:         strings.TrimSpace(req.Pickup),
		Delivery:       strings.TrimSpace(req.Delivery),
		PackageDetails: strings.TrimSpace(req.PackageDetails),
		Customer: models.JobCustomer{
			Name:  strings.TrimSpace(req.CustomerName),
			Phone: strings.TrimSpace(req.Phone),
			Email: strings.TrimSpace(req.Email),
		},
		Status: models.JobStatusPending,
	}

	if err := uc.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	event := &models.JobEvent{Job: *job, ActorID: actor.ID, Actor: actor.Role}
	if err := uc.jobGW.PublishJobCreated(ctx, event); err != nil {
		logger.Warn("failed to publish job created event",
			logger.String("job_id", job.ID.String()),
			logger.Err(err))
	}

	logger.Info("job created",
		logger.String("job_id", job.ID.String()),
		logger.String("owner_id", actor.ID.String()))

	return job, nil
}

// ListJobs returns jobs scoped by the caller's role.
func (uc *JobUC) ListJobs(ctx context.Context, actor models.Actor, status models.JobStatus) ([]models.Job, error) {
	if status != "" && !status.Valid() {
		return nil, jobs.NewValidationError("status", "unknown status filter")
	}

	filter := jobs.JobFilter{Status: status}
	switch actor.Role {
	case models.RoleAdmin:
		// no scope: admins see everything
	case models.RoleCustomer:
		filter.OwnerID = actor.ID
	case models.RoleDriver:
		filter.DriverID = actor.ID
	default:
		return nil, jobs.ErrForbidden
	}

	list, err := uc.jobRepo.ListJobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return list, nil
}

// GetJob returns a single job after checking the caller may see it.
func (uc *JobUC) GetJob(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Job, error) {
	job, err := uc.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
		return job, nil
	case models.RoleCustomer:
		if job.OwnerID == actor.ID {
			return job, nil
		}
	case models.RoleDriver:
		if job.Driver != nil && job.Driver.ID == actor.ID {
			return job, nil
		}
	}

	return nil, jobs.ErrForbidden
}

func validateCreateJob(req models.CreateJobRequest) error {
	if !utils.MinLen(req.Pickup, 3) {
		return jobs.NewValidationError("pickup", "pickup address must be at least 3 characters")
	}
	if !utils.MinLen(req.Delivery, 3) {
		return jobs.NewValidationError("delivery", "delivery address must be at least 3 characters")
	}
	if !utils.MinLen(req.PackageDetails, 5) {
		return jobs.NewValidationError("packageDetails", "package details must be at least 5 characters")
	}
	if !utils.MinLen(req.CustomerName, 2) {
		return jobs.NewValidationError("customerName", "customer name must be at least 2 characters")
	}
	if !utils.IsValidPhone(strings.TrimSpace(req.Phone)) {
		return jobs.NewValidationError("phone", "invalid phone number")
	}
	if !utils.IsValidEmail(strings.TrimSpace(req.Email)) {
		return jobs.NewValidationError("email", "invalid email address")
	}
	return nil
}
