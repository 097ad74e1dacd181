package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/fleet"
)

// ListTrucks returns the truck roster.
func (uc *FleetUC) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	trucks, err := uc.fleetRepo.ListTrucks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	return trucks, nil
}

// UpdateDriverLocation stores the caller's latest sample and publishes it on
// the fleet subject. The stored sample replaces whatever came before.
func (uc *FleetUC) UpdateDriverLocation(ctx context.Context, actor models.Actor, update models.LocationUpdate) (*models.DriverLocation, error) {
	if update.Latitude < -90 || update.Latitude > 90 {
		return nil, fleet.NewValidationError("latitude", "latitude must be between -90 and 90")
	}
	if update.Longitude < -180 || update.Longitude > 180 {
		return nil, fleet.NewValidationError("longitude", "longitude must be between -180 and 180")
	}

	location := &models.DriverLocation{
		DriverID:   actor.ID,
		Username:   actor.Username,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		ObservedAt: time.Now(),
		Online:     true,
	}

	if err := uc.fleetRepo.StoreDriverLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to store driver location: %w", err)
	}

	if err := uc.fleetGW.PublishLocationUpdate(ctx, location); err != nil {
		logger.Warn("failed to publish location update",
			logger.String("driver_id", actor.ID.String()),
			logger.Err(err))
	}

	return location, nil
}

// ListDriverLocations returns one sample per driver, flagged online when the
// sample is younger than the configured window.
func (uc *FleetUC) ListDriverLocations(ctx context.Context) ([]models.DriverLocation, error) {
	locations, err := uc.fleetRepo.GetDriverLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver locations: %w", err)
	}

	now := time.Now()
	for i := range locations {
		locations[i].Online = now.Sub(locations[i].ObservedAt) < uc.cfg.Fleet.OnlineWindow
	}

	return locations, nil
}
