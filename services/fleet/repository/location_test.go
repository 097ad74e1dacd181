package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/database"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

func setupLocationRepoTest(t *testing.T) (*FleetRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		Fleet: models.FleetConfig{
			LocationTTL: 30 * time.Minute,
		},
	}
	repo := NewFleetRepo(cfg, nil, database.NewRedisClientFromClient(client))

	return repo, mr
}

func TestStoreDriverLocation(t *testing.T) {
	repo, mr := setupLocationRepoTest(t)

	location := &models.DriverLocation{
		DriverID:   uuid.New(),
		Username:   "driver1",
		Latitude:   -6.2088,
		Longitude:  106.8456,
		ObservedAt: time.Now(),
	}

	err := repo.StoreDriverLocation(context.Background(), location)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyDriverLocation, location.DriverID.String())
	assert.Equal(t, "driver1", mr.HGet(key, constants.FieldUsername))
	assert.True(t, mr.TTL(key) > 0)

	members, err := mr.Members(constants.KeyActiveDrivers)
	require.NoError(t, err)
	assert.Contains(t, members, location.DriverID.String())
}

func TestStoreDriverLocation_MostRecentWins(t *testing.T) {
	repo, mr := setupLocationRepoTest(t)

	driverID := uuid.New()
	first := &models.DriverLocation{
		DriverID: driverID, Username: "driver1",
		Latitude: 1, Longitude: 1, ObservedAt: time.Now().Add(-time.Minute),
	}
	second := &models.DriverLocation{
		DriverID: driverID, Username: "driver1",
		Latitude: 2, Longitude: 2, ObservedAt: time.Now(),
	}

	require.NoError(t, repo.StoreDriverLocation(context.Background(), first))
	require.NoError(t, repo.StoreDriverLocation(context.Background(), second))

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID.String())
	assert.Equal(t, "2", mr.HGet(key, constants.FieldLatitude))

	locations, err := repo.GetDriverLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, 2.0, locations[0].Latitude)
}

func TestGetDriverLocations_RoundTrip(t *testing.T) {
	repo, _ := setupLocationRepoTest(t)

	observedAt := time.Now().Truncate(time.Millisecond)
	location := &models.DriverLocation{
		DriverID:   uuid.New(),
		Username:   "driver1",
		Latitude:   -6.2088,
		Longitude:  106.8456,
		ObservedAt: observedAt,
	}
	require.NoError(t, repo.StoreDriverLocation(context.Background(), location))

	locations, err := repo.GetDriverLocations(context.Background())

	require.NoError(t, err)
	require.Len(t, locations, 1)
	got := locations[0]
	assert.Equal(t, location.DriverID, got.DriverID)
	assert.Equal(t, "driver1", got.Username)
	assert.Equal(t, -6.2088, got.Latitude)
	assert.Equal(t, 106.8456, got.Longitude)
	assert.True(t, got.ObservedAt.Equal(observedAt))
}

func TestGetDriverLocations_ExpiredHashDropped(t *testing.T) {
	repo, mr := setupLocationRepoTest(t)

	location := &models.DriverLocation{
		DriverID:   uuid.New(),
		Username:   "driver1",
		Latitude:   1,
		Longitude:  2,
		ObservedAt: time.Now(),
	}
	require.NoError(t, repo.StoreDriverLocation(context.Background(), location))

	// Expire the location hash; the active set entry remains.
	mr.FastForward(time.Hour)

	locations, err := repo.GetDriverLocations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, locations)

	if mr.Exists(constants.KeyActiveDrivers) {
		members, err := mr.Members(constants.KeyActiveDrivers)
		require.NoError(t, err)
		assert.NotContains(t, members, location.DriverID.String())
	}
}

func TestGetDriverLocations_Empty(t *testing.T) {
	repo, _ := setupLocationRepoTest(t)

	locations, err := repo.GetDriverLocations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, locations)
}
