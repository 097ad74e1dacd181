package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/jobs"
)

// jobRow is the flat scan target for job queries joined with the driver and
// truck rosters. The joined columns are null while the job is pending.
type jobRow struct {
	ID             uuid.UUID        `db:"id"`
	OwnerID        uuid.UUID        `db:"owner_id"`
	Pickup         string           `db:"pickup"`
	Delivery       string           `db:"delivery"`
	PackageDetails string           `db:"package_details"`
	CustomerName   string           `db:"customer_name"`
	CustomerPhone  string           `db:"customer_phone"`
	CustomerEmail  string           `db:"customer_email"`
	Status         models.JobStatus `db:"status"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`

	DriverID       uuid.NullUUID  `db:"driver_id"`
	DriverUsername sql.NullString `db:"driver_username"`
	DriverFullName sql.NullString `db:"driver_fullname"`
	TruckID        uuid.NullUUID  `db:"truck_id"`
	TruckPlate     sql.NullString `db:"truck_plate"`
}

func (r jobRow) toJob() models.Job {
	job := models.Job{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		Pickup:         r.Pickup,
		Delivery:       r.Delivery,
		PackageDetails: r.PackageDetails,
		Customer: models.JobCustomer{
			Name:  r.CustomerName,
			Phone: r.CustomerPhone,
			Email: r.CustomerEmail,
		},
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.DriverID.Valid {
		job.Driver = &models.DriverRef{
			ID:       r.DriverID.UUID,
			Username: r.DriverUsername.String,
			FullName: r.DriverFullName.String,
		}
	}
	if r.TruckID.Valid {
		job.Truck = &models.TruckRef{
			ID:          r.TruckID.UUID,
			PlateNumber: r.TruckPlate.String,
		}
	}

	return job
}

const jobSelect = `
	SELECT j.id, j.owner_id, j.pickup, j.delivery, j.package_details,
		j.customer_name, j.customer_phone, j.customer_email,
		j.status, j.created_at, j.updated_at,
		j.driver_id, u.username AS driver_username, u.fullname AS driver_fullname,
		j.truck_id, t.plate_number AS truck_plate
	FROM jobs j
	LEFT JOIN users u ON u.id = j.driver_id
	LEFT JOIN trucks t ON t.id = j.truck_id
`

// CreateJob inserts a new pending job
func (r *JobRepo) CreateJob(ctx context.Context, job *models.Job) error {
	job.ID = uuid.New()
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `
		INSERT INTO jobs (id, owner_id, pickup, delivery, package_details,
			customer_name, customer_phone, customer_email,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.OwnerID, job.Pickup, job.Delivery, job.PackageDetails,
		job.Customer.Name, job.Customer.Phone, job.Customer.Email,
		job.Status, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

// GetJobByID retrieves a job with its driver and truck references
func (r *JobRepo) GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := jobSelect + ` WHERE j.id = $1`

	var row jobRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	job := row.toJob()
	return &job, nil
}

// ListJobs retrieves jobs matching the filter, newest first
func (r *JobRepo) ListJobs(ctx context.Context, filter jobs.JobFilter) ([]models.Job, error) {
	query := jobSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.OwnerID != uuid.Nil {
		args = append(args, filter.OwnerID)
		query += ` AND j.owner_id = $` + strconv.Itoa(len(args))
	}
	if filter.DriverID != uuid.Nil {
		args = append(args, filter.DriverID)
		query += ` AND j.driver_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND j.status = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY j.created_at DESC`

	var rows []jobRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	list := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toJob())
	}
	return list, nil
}

// AssignJob binds a driver and truck to a job if and only if the job is
// still pending. The WHERE clause is the CAS guard: exactly one concurrent
// caller observes a changed row.
func (r *JobRepo) AssignJob(ctx context.Context, jobID, driverID, truckID uuid.UUID) (bool, error) {
	query := `
		UPDATE jobs
		SET driver_id = $1, truck_id = $2, status = $3, updated_at = $4
		WHERE id = $5 AND status = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		driverID, truckID, models.JobStatusAssigned, time.Now(),
		jobID, models.JobStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to assign job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read assign result: %w", err)
	}
	return affected == 1, nil
}

// UpdateJobStatus moves a job from one status to another with a CAS on the
// expected current status.
func (r *JobRepo) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, from, to models.JobStatus) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, to, time.Now(), jobID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update job status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read status update result: %w", err)
	}
	return affected == 1, nil
}

// GetDriverRef resolves an active driver for assignment
func (r *JobRepo) GetDriverRef(ctx context.Context, driverID uuid.UUID) (*models.DriverRef, error) {
	query := `
		SELECT id, username, fullname
		FROM users
		WHERE id = $1 AND role = 'driver' AND is_active = true
	`

	var ref models.DriverRef
	err := r.db.GetContext(ctx, &ref, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &ref, nil
}

// GetTruckRef resolves a truck for assignment
func (r *JobRepo) GetTruckRef(ctx context.Context, truckID uuid.UUID) (*models.TruckRef, error) {
	query := `
		SELECT id, plate_number
		FROM trucks
		WHERE id = $1
	`

	var ref models.TruckRef
	err := r.db.GetContext(ctx, &ref, query, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrTruckNotFound
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return &ref, nil
}
