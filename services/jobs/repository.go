package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrizal89/angkutin/services/jobs JobRepo

// JobFilter narrows list queries. Zero values mean "no filter".
type JobFilter struct {
	OwnerID  uuid.UUID
	DriverID uuid.UUID
	Status   models.JobStatus
}

// JobRepo represents the job repository interface
type JobRepo interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, error)

	// AssignJob is a compare-and-set: the UPDATE is keyed on
	// status=pending and reports whether a row changed.
	AssignJob(ctx context.Context, jobID, driverID, truckID uuid.UUID) (bool, error)

	// UpdateJobStatus is a compare-and-set on the expected current status.
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, from, to models.JobStatus) (bool, error)

	// Roster lookups used to resolve assignment targets.
	GetDriverRef(ctx context.Context, driverID uuid.UUID) (*models.DriverRef, error)
	GetTruckRef(ctx context.Context, truckID uuid.UUID) (*models.TruckRef, error)
}
