package gateway

import (
	"context"
	"encoding/json"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// PublishJobCreated publishes a job created event to NATS
func (g *JobGW) PublishJobCreated(ctx context.Context, event *models.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectJobCreated, data)
}

// PublishJobAssigned publishes a job assigned event to NATS
func (g *JobGW) PublishJobAssigned(ctx context.Context, event *models.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectJobAssigned, data)
}

// PublishJobStatusChanged publishes a job status change event to NATS
func (g *JobGW) PublishJobStatusChanged(ctx context.Context, event *models.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectJobStatusChanged, data)
}
