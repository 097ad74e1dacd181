package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrizal89/angkutin/services/jobs JobUC

// JobUC represents the job usecase interface
type JobUC interface {
	// CreateJob validates the form and creates a pending job owned by the
	// caller.
	CreateJob(ctx context.Context, actor models.Actor, req models.CreateJobRequest) (*models.Job, error)

	// ListJobs returns jobs visible to the caller: admins see everything,
	// customers their own, drivers the ones assigned to them. An optional
	// status narrows the result.
	ListJobs(ctx context.Context, actor models.Actor, status models.JobStatus) ([]models.Job, error)

	// GetJob returns a single job, scope-checked against the caller.
	GetJob(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Job, error)

	// AssignJob binds a driver and truck to a pending job. Exactly one
	// concurrent caller wins; losers get ErrAlreadyAssigned or
	// ErrAssignConflict.
	AssignJob(ctx context.Context, actor models.Actor, id uuid.UUID, req models.AssignJobRequest) (*models.Job, error)

	// UpdateJobStatus advances the job along its lifecycle with a CAS on
	// the current status.
	UpdateJobStatus(ctx context.Context, actor models.Actor, id uuid.UUID, target models.JobStatus) (*models.Job, error)
}
