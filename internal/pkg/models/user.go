package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a user may do in the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDriver:
		return true
	}
	return false
}

// User represents an account (admin, customer or driver).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"fullname" db:"fullname"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

// DriverRef is the lightweight driver projection embedded in job responses.
type DriverRef struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Username string    `json:"username" db:"username"`
	FullName string    `json:"fullname" db:"fullname"`
}
