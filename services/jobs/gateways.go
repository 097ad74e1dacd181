package jobs

import (
	"context"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fahrizal89/angkutin/services/jobs JobGW

// JobGW defines the job gateways interface
type JobGW interface {
	// NATS Gateway
	PublishJobCreated(ctx context.Context, event *models.JobEvent) error
	PublishJobAssigned(ctx context.Context, event *models.JobEvent) error
	PublishJobStatusChanged(ctx context.Context, event *models.JobEvent) error
}
