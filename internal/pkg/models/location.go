package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationUpdate is a driver-reported position sample.
type LocationUpdate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DriverLocation is the most recent known position of a driver.
// Only the latest sample per driver is retained.
type DriverLocation struct {
	DriverID   uuid.UUID `json:"driver_id"`
	Username   string    `json:"username"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ObservedAt time.Time `json:"observed_at"`
	Online     bool      `json:"online"`
}
