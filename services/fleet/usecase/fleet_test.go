package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/fleet"
	"github.com/fahrizal89/angkutin/services/fleet/mocks"
)

func setupFleetUCTest(t *testing.T) (*FleetUC, *mocks.MockFleetRepo, *mocks.MockFleetGW) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)
	cfg := &models.Config{
		Fleet: models.FleetConfig{
			OnlineWindow: 10 * time.Minute,
			LocationTTL:  30 * time.Minute,
		},
	}

	return NewFleetUC(mockRepo, mockGW, cfg), mockRepo, mockGW
}

func TestListTrucks(t *testing.T) {
	uc, mockRepo, _ := setupFleetUCTest(t)

	trucks := []models.Truck{
		{ID: uuid.New(), PlateNumber: "B 1234 XY", Model: "Colt Diesel", CapacityKg: 2000},
	}
	mockRepo.EXPECT().ListTrucks(gomock.Any()).Return(trucks, nil)

	got, err := uc.ListTrucks(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateDriverLocation_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupFleetUCTest(t)

	actor := models.Actor{ID: uuid.New(), Username: "driver1", Role: models.RoleDriver}
	update := models.LocationUpdate{Latitude: -6.2088, Longitude: 106.8456}

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, location *models.DriverLocation) error {
			assert.Equal(t, actor.ID, location.DriverID)
			assert.Equal(t, "driver1", location.Username)
			assert.Equal(t, -6.2088, location.Latitude)
			assert.WithinDuration(t, time.Now(), location.ObservedAt, time.Second)
			return nil
		})
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	location, err := uc.UpdateDriverLocation(context.Background(), actor, update)

	require.NoError(t, err)
	assert.True(t, location.Online)
}

func TestUpdateDriverLocation_OutOfRange(t *testing.T) {
	uc, _, _ := setupFleetUCTest(t)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	testCases := []struct {
		name   string
		update models.LocationUpdate
		field  string
	}{
		{"latitude too high", models.LocationUpdate{Latitude: 91, Longitude: 0}, "latitude"},
		{"latitude too low", models.LocationUpdate{Latitude: -90.5, Longitude: 0}, "latitude"},
		{"longitude too high", models.LocationUpdate{Latitude: 0, Longitude: 181}, "longitude"},
		{"longitude too low", models.LocationUpdate{Latitude: 0, Longitude: -180.5}, "longitude"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpdateDriverLocation(context.Background(), actor, tc.update)

			var vErr *fleet.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestUpdateDriverLocation_PublishFailureTolerated(t *testing.T) {
	uc, mockRepo, mockGW := setupFleetUCTest(t)

	actor := models.Actor{ID: uuid.New(), Username: "driver1", Role: models.RoleDriver}
	update := models.LocationUpdate{Latitude: 1, Longitude: 2}

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := uc.UpdateDriverLocation(context.Background(), actor, update)

	assert.NoError(t, err)
}

func TestListDriverLocations_OnlineFlag(t *testing.T) {
	uc, mockRepo, _ := setupFleetUCTest(t)

	now := time.Now()
	samples := []models.DriverLocation{
		{DriverID: uuid.New(), Username: "fresh", ObservedAt: now.Add(-time.Minute)},
		{DriverID: uuid.New(), Username: "stale", ObservedAt: now.Add(-15 * time.Minute)},
	}
	mockRepo.EXPECT().GetDriverLocations(gomock.Any()).Return(samples, nil)

	locations, err := uc.ListDriverLocations(context.Background())

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.True(t, locations[0].Online)
	assert.False(t, locations[1].Online)
}
