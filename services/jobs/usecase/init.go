package usecase

import (
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs"
)

type JobUC struct {
	jobRepo jobs.JobRepo
	jobGW   jobs.JobGW
	cfg     *models.Config
}

// NewJobUC creates a new job usecase instance
func NewJobUC(
	jobRepo jobs.JobRepo,
	jobGW jobs.JobGW,
	cfg *models.Config,
) *JobUC {
	return &JobUC{
		jobRepo: jobRepo,
		jobGW:   jobGW,
		cfg:     cfg,
	}
}
