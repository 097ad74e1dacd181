package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

func setupTruckRepoTest(t *testing.T) (*FleetRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewFleetRepo(&models.Config{}, db, nil)

	return repo, mock
}

func TestListTrucks(t *testing.T) {
	repo, mock := setupTruckRepoTest(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "plate_number", "model", "capacity_kg", "created_at", "updated_at"}).
		AddRow(uuid.New(), "B 1234 XY", "Colt Diesel", 2000, now, now).
		AddRow(uuid.New(), "B 5678 ZA", "Dyna 110", 3500, now, now)

	mock.ExpectQuery("SELECT (.+) FROM trucks").WillReturnRows(rows)

	trucks, err := repo.ListTrucks(context.Background())

	require.NoError(t, err)
	assert.Len(t, trucks, 2)
	assert.Equal(t, "B 1234 XY", trucks[0].PlateNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTrucks_Empty(t *testing.T) {
	repo, mock := setupTruckRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM trucks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "plate_number", "model", "capacity_kg", "created_at", "updated_at"}))

	trucks, err := repo.ListTrucks(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trucks)
}
