package models

import (
	"time"

	"github.com/google/uuid"
)

// Truck represents a vehicle in the fleet roster.
type Truck struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	Model       string    `json:"model" db:"model"`
	CapacityKg  int       `json:"capacity_kg" db:"capacity_kg"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TruckRef is the lightweight truck projection embedded in job responses.
type TruckRef struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
}
