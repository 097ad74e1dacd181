package client

import (
	"context"
	"time"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// FleetSnapshot is one observation of the whole fleet, or the error that
// replaced it.
type FleetSnapshot struct {
	Locations []models.DriverLocation
	Err       error
}

// WatchFleet polls the fleet positions at the given interval and streams
// snapshots until ctx is cancelled. The channel is closed on cancellation.
// Transient fetch errors are delivered as snapshots with Err set; the
// watcher keeps going.
func (s *Session) WatchFleet(ctx context.Context, interval time.Duration) <-chan FleetSnapshot {
	out := make(chan FleetSnapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			locations, err := s.FleetLocations(ctx)
			if err == ErrUnauthenticated {
				return
			}

			select {
			case out <- FleetSnapshot{Locations: locations, Err: err}:
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// TrackLocation consumes position samples from updates and reports each to
// the server until ctx is cancelled or updates is closed. Push failures
// are logged and skipped so a flaky link does not end the trip.
func (s *Session) TrackLocation(ctx context.Context, updates <-chan models.LocationUpdate) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if _, err := s.PushLocation(ctx, update); err != nil {
				if err == ErrUnauthenticated {
					return err
				}
				logger.Warn("failed to push location update",
					logger.Err(err))
			}
		}
	}
}
