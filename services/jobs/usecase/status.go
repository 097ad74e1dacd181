package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs"
)

// legalEdges holds the lifecycle graph. Cancellation edges are listed here
// too; who may take an edge is decided separately.
var legalEdges = map[models.JobStatus][]models.JobStatus{
	models.JobStatusPending:    {models.JobStatusCancelled},
	models.JobStatusAssigned:   {models.JobStatusInProgress, models.JobStatusCancelled},
	models.JobStatusInProgress: {models.JobStatusCompleted, models.JobStatusCancelled},
}

func edgeAllowed(from, to models.JobStatus) bool {
	for _, next := range legalEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateJobStatus advances a job along its lifecycle. The edge is taken with
// a CAS on the status the caller observed, so two racing callers cannot both
// take the same edge.
func (uc *JobUC) UpdateJobStatus(ctx context.Context, actor models.Actor, id uuid.UUID, target models.JobStatus) (*models.Job, error) {
	if !target.Valid() {
		return nil, jobs.NewValidationError("status", "unknown status")
	}

	job, err := uc.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !edgeAllowed(job.Status, target) {
		return nil, jobs.ErrIllegalTransition
	}

	if err := uc.authorizeEdge(actor, job, target); err != nil {
		return nil, err
	}

	moved, err := uc.jobRepo.UpdateJobStatus(ctx, id, job.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	if !moved {
		// The job changed between read and CAS. Whatever it is now, the
		// edge the caller asked for no longer applies.
		if _, err := uc.jobRepo.GetJobByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, jobs.ErrIllegalTransition
	}

	updated, err := uc.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := &models.JobEvent{Job: *updated, ActorID: actor.ID, Actor: actor.Role}
	if err := uc.jobGW.PublishJobStatusChanged(ctx, event); err != nil {
		logger.Warn("failed to publish job status event",
			logger.String("job_id", updated.ID.String()),
			logger.Err(err))
	}

	logger.Info("job status changed",
		logger.String("job_id", updated.ID.String()),
		logger.String("from", string(job.Status)),
		logger.String("to", string(target)))

	return updated, nil
}

// authorizeEdge decides whether the caller may take an already-legal edge.
func (uc *JobUC) authorizeEdge(actor models.Actor, job *models.Job, target models.JobStatus) error {
	switch actor.Role {
	case models.RoleDriver:
		if target == models.JobStatusCancelled {
			return jobs.ErrForbidden
		}
		if job.Driver == nil || job.Driver.ID != actor.ID {
			return jobs.ErrForbidden
		}
		return nil
	case models.RoleAdmin:
		if target == models.JobStatusCancelled {
			return nil
		}
		if !uc.cfg.Jobs.AdminAdvance {
			return jobs.ErrForbidden
		}
		return nil
	default:
		return jobs.ErrForbidden
	}
}
