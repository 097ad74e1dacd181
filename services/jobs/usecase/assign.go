package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs"
)

// AssignJob binds a driver and truck to a pending job. The repository CAS
// guarantees at most one winner under concurrent assignment; a failed CAS is
// re-read to report why the caller lost.
func (uc *JobUC) AssignJob(ctx context.Context, actor models.Actor, id uuid.UUID, req models.AssignJobRequest) (*models.Job, error) {
	if actor.Role != models.RoleAdmin {
		return nil, jobs.ErrForbidden
	}
	if req.DriverID == uuid.Nil {
		return nil, jobs.NewValidationError("driverId", "driverId is required")
	}
	if req.TruckID == uuid.Nil {
		return nil, jobs.NewValidationError("truckId", "truckId is required")
	}

	// Resolve both targets before touching the job so a bad request never
	// consumes the pending slot.
	driver, err := uc.jobRepo.GetDriverRef(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	truck, err := uc.jobRepo.GetTruckRef(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}

	won, err := uc.jobRepo.AssignJob(ctx, id, driver.ID, truck.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign job: %w", err)
	}
	if !won {
		return nil, uc.classifyAssignFailure(ctx, id)
	}

	job, err := uc.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := &models.JobEvent{Job: *job, ActorID: actor.ID, Actor: actor.Role}
	if err := uc.jobGW.PublishJobAssigned(ctx, event); err != nil {
		logger.Warn("failed to publish job assigned event",
			logger.String("job_id", job.ID.String()),
			logger.Err(err))
	}

	logger.Info("job assigned",
		logger.String("job_id", job.ID.String()),
		logger.String("driver_id", driver.ID.String()),
		logger.String("truck_id", truck.ID.String()))

	return job, nil
}

// classifyAssignFailure re-reads a job after a lost CAS to distinguish a
// missing job from one that already left pending.
func (uc *JobUC) classifyAssignFailure(ctx context.Context, id uuid.UUID) error {
	job, err := uc.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return err
	}
	if job.Status == models.JobStatusAssigned {
		return jobs.ErrAlreadyAssigned
	}
	return jobs.ErrAssignConflict
}
