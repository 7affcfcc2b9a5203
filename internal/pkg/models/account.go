package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleDriver = "driver"
)

// Account represents a person who can sign in (admin, rider, or driver)
type Account struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	FullName     string      `json:"fullName" db:"fullname"`
	Role         string      `json:"role" db:"role"`
	PasswordHash string      `json:"-" db:"password_hash"`
	IsActive     bool        `json:"isActive" db:"is_active"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
	DriverInfo   *DriverInfo `json:"driverInfo,omitempty"`
}

// DriverInfo carries the driver-specific columns for accounts with the
// driver role
type DriverInfo struct {
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	BusNumber string    `json:"busNumber" db:"bus_number"`
	Phone     string    `json:"phone" db:"phone"`
	License   string    `json:"license,omitempty" db:"license"`
}

// LoginRequest is the credential payload for any role's login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token plus the signed-in account
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expiresAt"`
	Account   Account `json:"account"`
}

// RegisterAccountRequest is the admin payload for creating users and drivers
type RegisterAccountRequest struct {
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Password  string `json:"password"`
	BusNumber string `json:"busNumber,omitempty"`
	Phone     string `json:"phone,omitempty"`
	License   string `json:"license,omitempty"`
}
