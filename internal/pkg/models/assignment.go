package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment status values
const (
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// Per-rider pickup progress values
const (
	RiderStatusPending = "pending"
	RiderStatusPicked  = "picked"
	RiderStatusDropped = "dropped"
)

// Waypoint is a fixed pickup or drop coordinate pair on an assignment.
// Waypoints are immutable once the assignment is created.
type Waypoint struct {
	Label     string  `json:"label" db:"label"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// AssignedRider tracks one rider's progress on an assignment
type AssignedRider struct {
	UserID   uuid.UUID `json:"userId" db:"user_id"`
	FullName string    `json:"fullName,omitempty" db:"fullname"`
	Status   string    `json:"status" db:"status"`
}

// Assignment links a driver to a set of riders and a pickup/drop route
type Assignment struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	DriverID       uuid.UUID       `json:"driverId" db:"driver_id"`
	DriverName     string          `json:"driverName" db:"driver_name"`
	BusNumber      string          `json:"busNumber" db:"bus_number"`
	Pickup         Waypoint        `json:"pickupCoordinates"`
	Drop           Waypoint        `json:"dropCoordinates"`
	AssignedRiders []AssignedRider `json:"assignedUsers"`
	Status         string          `json:"status" db:"status"`
	Notes          string          `json:"notes,omitempty" db:"notes"`
	AssignmentDate time.Time       `json:"assignmentDate" db:"assignment_date"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// CreateAssignmentRequest is the admin payload for creating an assignment
type CreateAssignmentRequest struct {
	DriverID    uuid.UUID   `json:"driverId"`
	UserIDs     []uuid.UUID `json:"userIds"`
	PickupLabel string      `json:"pickupLocation"`
	DropLabel   string      `json:"dropLocation"`
	Pickup      Waypoint    `json:"pickupCoordinates"`
	Drop        Waypoint    `json:"dropCoordinates"`
	Notes       string      `json:"notes"`
}

// UpdateRiderStatusRequest moves one rider between pending/picked/dropped
type UpdateRiderStatusRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status string    `json:"status"`
}
