package fleet

import (
	"context"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fahrizal89/angkutin/services/fleet FleetGW

// FleetGW defines the fleet gateways interface
type FleetGW interface {
	// NATS Gateway
	PublishLocationUpdate(ctx context.Context, location *models.DriverLocation) error
}
