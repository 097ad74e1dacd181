package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs"
	"github.com/fahrizal89/angkutin/services/jobs/mocks"
)

func assignedJob(driverID uuid.UUID) *models.Job {
	return &models.Job{
		ID:     uuid.New(),
		Status: models.JobStatusAssigned,
		Driver: &models.DriverRef{ID: driverID, Username: "driver1"},
		Truck:  &models.TruckRef{ID: uuid.New()},
	}
}

func expectMove(mockRepo *mocks.MockJobRepo, mockGW *mocks.MockJobGW, job *models.Job, from, to models.JobStatus) {
	updated := *job
	updated.Status = to

	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, from, to).Return(true, nil)
	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(&updated, nil)
	mockGW.EXPECT().PublishJobStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
}

func TestUpdateJobStatus_DriverStarts(t *testing.T) {
	uc, mockRepo, mockGW := setupJobUCTest(t)

	driverID := uuid.New()
	job := assignedJob(driverID)
	actor := models.Actor{ID: driverID, Role: models.RoleDriver}

	expectMove(mockRepo, mockGW, job, models.JobStatusAssigned, models.JobStatusInProgress)

	updated, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, updated.Status)
}

func TestUpdateJobStatus_DriverCompletes(t *testing.T) {
	uc, mockRepo, mockGW := setupJobUCTest(t)

	driverID := uuid.New()
	job := assignedJob(driverID)
	job.Status = models.JobStatusInProgress
	actor := models.Actor{ID: driverID, Role: models.RoleDriver}

	expectMove(mockRepo, mockGW, job, models.JobStatusInProgress, models.JobStatusCompleted)

	updated, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, updated.Status)
}

func TestUpdateJobStatus_OtherDriverForbidden(t *testing.T) {
	uc, mockRepo, _ := setupJobUCTest(t)

	job := assignedJob(uuid.New())
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)

	_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

	assert.ErrorIs(t, err, jobs.ErrForbidden)
}

func TestUpdateJobStatus_DriverCannotCancel(t *testing.T) {
	uc, mockRepo, _ := setupJobUCTest(t)

	driverID := uuid.New()
	job := assignedJob(driverID)
	actor := models.Actor{ID: driverID, Role: models.RoleDriver}

	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)

	_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusCancelled)

	assert.ErrorIs(t, err, jobs.ErrForbidden)
}

func TestUpdateJobStatus_AdminCancels(t *testing.T) {
	uc, mockRepo, mockGW := setupJobUCTest(t)

	job := &models.Job{ID: uuid.New(), Status: models.JobStatusPending}
	actor := adminActor()

	expectMove(mockRepo, mockGW, job, models.JobStatusPending, models.JobStatusCancelled)

	updated, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, updated.Status)
}

func TestUpdateJobStatus_AdminAdvancePolicy(t *testing.T) {
	t.Run("allowed by default", func(t *testing.T) {
		uc, mockRepo, mockGW := setupJobUCTest(t)

		job := assignedJob(uuid.New())
		actor := adminActor()

		expectMove(mockRepo, mockGW, job, models.JobStatusAssigned, models.JobStatusInProgress)

		_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

		assert.NoError(t, err)
	})

	t.Run("denied when disabled", func(t *testing.T) {
		uc, mockRepo, _ := setupJobUCTest(t)
		uc.cfg.Jobs.AdminAdvance = false

		job := assignedJob(uuid.New())
		actor := adminActor()

		mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)

		_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

		assert.ErrorIs(t, err, jobs.ErrForbidden)
	})

	t.Run("cancel unaffected by policy", func(t *testing.T) {
		uc, mockRepo, mockGW := setupJobUCTest(t)
		uc.cfg.Jobs.AdminAdvance = false

		job := assignedJob(uuid.New())
		actor := adminActor()

		expectMove(mockRepo, mockGW, job, models.JobStatusAssigned, models.JobStatusCancelled)

		_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusCancelled)

		assert.NoError(t, err)
	})
}

func TestUpdateJobStatus_IllegalEdges(t *testing.T) {
	actor := adminActor()

	testCases := []struct {
		name   string
		from   models.JobStatus
		target models.JobStatus
	}{
		{"pending cannot start", models.JobStatusPending, models.JobStatusInProgress},
		{"assigned cannot complete", models.JobStatusAssigned, models.JobStatusCompleted},
		{"completed is terminal", models.JobStatusCompleted, models.JobStatusCancelled},
		{"cancelled is terminal", models.JobStatusCancelled, models.JobStatusInProgress},
		{"no backwards move", models.JobStatusInProgress, models.JobStatusAssigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _ := setupJobUCTest(t)

			job := &models.Job{ID: uuid.New(), Status: tc.from}
			mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)

			_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, tc.target)

			assert.ErrorIs(t, err, jobs.ErrIllegalTransition)
		})
	}
}

func TestUpdateJobStatus_LostCAS(t *testing.T) {
	uc, mockRepo, _ := setupJobUCTest(t)

	driverID := uuid.New()
	job := assignedJob(driverID)
	actor := models.Actor{ID: driverID, Role: models.RoleDriver}

	moved := *job
	moved.Status = models.JobStatusCancelled

	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)
	mockRepo.EXPECT().
		UpdateJobStatus(gomock.Any(), job.ID, models.JobStatusAssigned, models.JobStatusInProgress).
		Return(false, nil)
	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(&moved, nil)

	_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

	assert.ErrorIs(t, err, jobs.ErrIllegalTransition)
}

func TestUpdateJobStatus_UnknownStatus(t *testing.T) {
	uc, _, _ := setupJobUCTest(t)

	_, err := uc.UpdateJobStatus(context.Background(), adminActor(), uuid.New(), models.JobStatus("shipped"))

	var vErr *jobs.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateJobStatus_CustomerForbidden(t *testing.T) {
	uc, mockRepo, _ := setupJobUCTest(t)

	job := assignedJob(uuid.New())
	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}

	mockRepo.EXPECT().GetJobByID(gomock.Any(), job.ID).Return(job, nil)

	_, err := uc.UpdateJobStatus(context.Background(), actor, job.ID, models.JobStatusInProgress)

	assert.ErrorIs(t, err, jobs.ErrForbidden)
}
