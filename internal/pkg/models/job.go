package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a delivery job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Valid reports whether the status is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusAssigned, JobStatusInProgress,
		JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave this status.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// JobCustomer is the contact block a customer submits with a job.
type JobCustomer struct {
	Name  string `json:"name" db:"customer_name"`
	Phone string `json:"phone" db:"customer_phone"`
	Email string `json:"email" db:"customer_email"`
}

// Job represents a delivery job. Driver and Truck are nil until an admin
// assigns them; once the job leaves pending both are set.
type Job struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	OwnerID        uuid.UUID   `json:"owner_id" db:"owner_id"`
	Pickup         string      `json:"pickup" db:"pickup"`
	Delivery       string      `json:"delivery" db:"delivery"`
	PackageDetails string      `json:"package_details" db:"package_details"`
	Customer       JobCustomer `json:"customer"`
	Driver         *DriverRef  `json:"driver,omitempty"`
	Truck          *TruckRef   `json:"truck,omitempty"`
	Status         JobStatus   `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// CreateJobRequest is the customer-submitted job form.
type CreateJobRequest struct {
	Pickup         string `json:"pickup"`
	Delivery       string `json:"delivery"`
	PackageDetails string `json:"packageDetails"`
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// AssignJobRequest binds a driver and truck to a pending job.
type AssignJobRequest struct {
	DriverID uuid.UUID `json:"driverId"`
	TruckID  uuid.UUID `json:"truckId"`
}

// UpdateJobStatusRequest advances a job along its lifecycle.
type UpdateJobStatusRequest struct {
	Status JobStatus `json:"status"`
}

// JobEvent is the payload published on job lifecycle subjects.
type JobEvent struct {
	Job     Job       `json:"job"`
	ActorID uuid.UUID `json:"actor_id"`
	Actor   Role      `json:"actor_role"`
}
