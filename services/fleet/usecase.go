package fleet

import (
	"context"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrizal89/angkutin/services/fleet FleetUC

// FleetUC represents the fleet usecase interface
type FleetUC interface {
	// ListTrucks returns the truck roster.
	ListTrucks(ctx context.Context) ([]models.Truck, error)

	// UpdateDriverLocation stores the caller's latest position sample and
	// publishes it for live consumers. Most recent wins, no history.
	UpdateDriverLocation(ctx context.Context, actor models.Actor, update models.LocationUpdate) (*models.DriverLocation, error)

	// ListDriverLocations returns the latest sample per driver, each
	// flagged online when it is fresh enough.
	ListDriverLocations(ctx context.Context) ([]models.DriverLocation, error)
}
