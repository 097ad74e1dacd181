package gateway

import (
	"context"
	"encoding/json"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// PublishLocationUpdate publishes a driver location sample to NATS
func (g *FleetGW) PublishLocationUpdate(ctx context.Context, location *models.DriverLocation) error {
	data, err := json.Marshal(location)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectFleetLocation, data)
}
