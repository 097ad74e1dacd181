package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// StoreDriverLocation overwrites the driver's location hash and refreshes
// its TTL. The driver is also tracked in the active set so listing does not
// need a key scan.
func (r *FleetRepo) StoreDriverLocation(ctx context.Context, location *models.DriverLocation) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, location.DriverID.String())

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: location.ObservedAt.UTC().Format(time.RFC3339Nano),
		constants.FieldUsername:  location.Username,
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.cfg.Fleet.LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyActiveDrivers, location.DriverID.String()); err != nil {
		return fmt.Errorf("failed to track active driver: %w", err)
	}

	return nil
}

// GetDriverLocations returns the latest sample for every tracked driver.
// Drivers whose hash expired are dropped from the active set on the way.
func (r *FleetRepo) GetDriverLocations(ctx context.Context) ([]models.DriverLocation, error) {
	driverIDs, err := r.redisClient.SMembers(ctx, constants.KeyActiveDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to list active drivers: %w", err)
	}

	locations := make([]models.DriverLocation, 0, len(driverIDs))
	for _, rawID := range driverIDs {
		driverID, err := uuid.Parse(rawID)
		if err != nil {
			logger.Warn("dropping malformed driver ID from active set",
				logger.String("driver_id", rawID))
			continue
		}

		key := fmt.Sprintf(constants.KeyDriverLocation, rawID)
		values, err := r.redisClient.HMGet(ctx, key,
			constants.FieldLatitude, constants.FieldLongitude,
			constants.FieldTimestamp, constants.FieldUsername)
		if err != nil {
			return nil, fmt.Errorf("failed to get driver location: %w", err)
		}

		// An expired hash comes back as empty fields; untrack the driver.
		if values[0] == "" || values[1] == "" || values[2] == "" {
			if err := r.redisClient.SRem(ctx, constants.KeyActiveDrivers, rawID); err != nil {
				logger.Warn("failed to untrack expired driver",
					logger.String("driver_id", rawID),
					logger.Err(err))
			}
			continue
		}

		location, err := parseLocation(driverID, values)
		if err != nil {
			logger.Warn("dropping unparsable driver location",
				logger.String("driver_id", rawID),
				logger.Err(err))
			continue
		}
		locations = append(locations, location)
	}

	return locations, nil
}

func parseLocation(driverID uuid.UUID, values []string) (models.DriverLocation, error) {
	latitude, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return models.DriverLocation{}, fmt.Errorf("bad latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return models.DriverLocation{}, fmt.Errorf("bad longitude: %w", err)
	}
	observedAt, err := time.Parse(time.RFC3339Nano, values[2])
	if err != nil {
		return models.DriverLocation{}, fmt.Errorf("bad timestamp: %w", err)
	}

	return models.DriverLocation{
		DriverID:   driverID,
		Username:   values[3],
		Latitude:   latitude,
		Longitude:  longitude,
		ObservedAt: observedAt,
	}, nil
}
