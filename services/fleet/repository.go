package fleet

import (
	"context"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrizal89/angkutin/services/fleet FleetRepo

// FleetRepo represents the fleet repository interface
type FleetRepo interface {
	// Truck roster, backed by postgres.
	ListTrucks(ctx context.Context) ([]models.Truck, error)

	// Driver locations, backed by Redis. Each driver holds a single
	// hash with a TTL; storing overwrites the previous sample.
	StoreDriverLocation(ctx context.Context, location *models.DriverLocation) error
	GetDriverLocations(ctx context.Context) ([]models.DriverLocation, error)
}
