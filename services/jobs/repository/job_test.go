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
	"github.com/fahrizal89/angkutin/services/jobs"
)

func setupJobRepoTest(t *testing.T) (*JobRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewJobRepo(&models.Config{}, db)

	return repo, mock
}

func jobColumns() []string {
	return []string{
		"id", "owner_id", "pickup", "delivery", "package_details",
		"customer_name", "customer_phone", "customer_email",
		"status", "created_at", "updated_at",
		"driver_id", "driver_username", "driver_fullname",
		"truck_id", "truck_plate",
	}
}

func TestCreateJob(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	job := &models.Job{
		OwnerID:        uuid.New(),
		Pickup:         "12 Oak Street",
		Delivery:       "90 Pine Avenue",
		PackageDetails: "Two boxes",
		Customer:       models.JobCustomer{Name: "Jane", Phone: "5551234", Email: "jane@example.com"},
		Status:         models.JobStatusPending,
	}

	mock.ExpectExec("INSERT INTO jobs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateJob(context.Background(), job)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobByID_Pending(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(jobColumns()).
		AddRow(id, ownerID, "12 Oak Street", "90 Pine Avenue", "Two boxes",
			"Jane", "5551234", "jane@example.com",
			"pending", now, now,
			nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM jobs").
		WithArgs(id).
		WillReturnRows(rows)

	job, err := repo.GetJobByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Nil(t, job.Driver)
	assert.Nil(t, job.Truck)
	assert.Equal(t, "Jane", job.Customer.Name)
}

func TestGetJobByID_Assigned(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	id := uuid.New()
	driverID := uuid.New()
	truckID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(jobColumns()).
		AddRow(id, uuid.New(), "12 Oak Street", "90 Pine Avenue", "Two boxes",
			"Jane", "5551234", "jane@example.com",
			"assigned", now, now,
			driverID, "driver1", "Andi", truckID, "B 1234 XY")

	mock.ExpectQuery("SELECT (.+) FROM jobs").
		WithArgs(id).
		WillReturnRows(rows)

	job, err := repo.GetJobByID(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, job.Driver)
	assert.Equal(t, driverID, job.Driver.ID)
	assert.Equal(t, "driver1", job.Driver.Username)
	require.NotNil(t, job.Truck)
	assert.Equal(t, "B 1234 XY", job.Truck.PlateNumber)
}

func TestGetJobByID_NotFound(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM jobs").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	_, err := repo.GetJobByID(context.Background(), id)

	assert.ErrorIs(t, err, jobs.ErrJobNotFound)
}

func TestListJobs_Filters(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	ownerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(jobColumns()).
		AddRow(uuid.New(), ownerID, "12 Oak Street", "90 Pine Avenue", "Two boxes",
			"Jane", "5551234", "jane@example.com",
			"pending", now, now,
			nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM jobs").
		WithArgs(ownerID, "pending").
		WillReturnRows(rows)

	list, err := repo.ListJobs(context.Background(), jobs.JobFilter{
		OwnerID: ownerID,
		Status:  models.JobStatusPending,
	})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignJob_CAS(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	jobID := uuid.New()
	driverID := uuid.New()
	truckID := uuid.New()

	t.Run("wins when pending", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.AssignJob(context.Background(), jobID, driverID, truckID)

		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("loses when already taken", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := repo.AssignJob(context.Background(), jobID, driverID, truckID)

		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestUpdateJobStatus_CAS(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	jobID := uuid.New()

	t.Run("moves on expected status", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WillReturnResult(sqlmock.NewResult(0, 1))

		moved, err := repo.UpdateJobStatus(context.Background(), jobID,
			models.JobStatusAssigned, models.JobStatusInProgress)

		require.NoError(t, err)
		assert.True(t, moved)
	})

	t.Run("rejects when status changed", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WillReturnResult(sqlmock.NewResult(0, 0))

		moved, err := repo.UpdateJobStatus(context.Background(), jobID,
			models.JobStatusAssigned, models.JobStatusInProgress)

		require.NoError(t, err)
		assert.False(t, moved)
	})
}

func TestGetDriverRef(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	driverID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "username", "fullname"}).
		AddRow(driverID, "driver1", "Andi")

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(driverID).
		WillReturnRows(rows)

	ref, err := repo.GetDriverRef(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, "driver1", ref.Username)
}

func TestGetDriverRef_NotFound(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	driverID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "fullname"}))

	_, err := repo.GetDriverRef(context.Background(), driverID)

	assert.ErrorIs(t, err, jobs.ErrDriverNotFound)
}

func TestGetTruckRef_NotFound(t *testing.T) {
	repo, mock := setupJobRepoTest(t)

	truckID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM trucks").
		WithArgs(truckID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "plate_number"}))

	_, err := repo.GetTruckRef(context.Background(), truckID)

	assert.ErrorIs(t, err, jobs.ErrTruckNotFound)
}
