package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker"
)

// AssignmentRepo is the Postgres-backed assignment repository
type AssignmentRepo struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// assignmentRow flattens the waypoint columns for scanning
type assignmentRow struct {
	ID             uuid.UUID `db:"id"`
	DriverID       uuid.UUID `db:"driver_id"`
	DriverName     string    `db:"driver_name"`
	BusNumber      string    `db:"bus_number"`
	PickupLabel    string    `db:"pickup_label"`
	PickupLat      float64   `db:"pickup_lat"`
	PickupLon      float64   `db:"pickup_lon"`
	DropLabel      string    `db:"drop_label"`
	DropLat        float64   `db:"drop_lat"`
	DropLon        float64   `db:"drop_lon"`
	Status         string    `db:"status"`
	Notes          string    `db:"notes"`
	AssignmentDate time.Time `db:"assignment_date"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const assignmentColumns = `
	a.id, a.driver_id, d.fullname AS driver_name, COALESCE(di.bus_number, '') AS bus_number,
	a.pickup_label, a.pickup_lat, a.pickup_lon,
	a.drop_label, a.drop_lat, a.drop_lon,
	a.status, a.notes, a.assignment_date, a.created_at, a.updated_at
`

const assignmentJoins = `
	FROM assignments a
	JOIN accounts d ON d.id = a.driver_id
	LEFT JOIN driver_info di ON di.user_id = a.driver_id
`

func (row *assignmentRow) toModel() *models.Assignment {
	return &models.Assignment{
		ID:         row.ID,
		DriverID:   row.DriverID,
		DriverName: row.DriverName,
		BusNumber:  row.BusNumber,
		Pickup: models.Waypoint{
			Label:     row.PickupLabel,
			Latitude:  row.PickupLat,
			Longitude: row.PickupLon,
		},
		Drop: models.Waypoint{
			Label:     row.DropLabel,
			Latitude:  row.DropLat,
			Longitude: row.DropLon,
		},
		Status:         row.Status,
		Notes:          row.Notes,
		AssignmentDate: row.AssignmentDate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// Create inserts an assignment and its rider rows in one transaction
func (r *AssignmentRepo) Create(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now
	if assignment.AssignmentDate.IsZero() {
		assignment.AssignmentDate = now
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO assignments (
			id, driver_id, pickup_label, pickup_lat, pickup_lon,
			drop_label, drop_lat, drop_lon, status, notes,
			assignment_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.ExecContext(ctx, query,
		assignment.ID, assignment.DriverID,
		assignment.Pickup.Label, assignment.Pickup.Latitude, assignment.Pickup.Longitude,
		assignment.Drop.Label, assignment.Drop.Latitude, assignment.Drop.Longitude,
		assignment.Status, assignment.Notes,
		assignment.AssignmentDate, assignment.CreatedAt, assignment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	riderQuery := `
		INSERT INTO assignment_riders (assignment_id, user_id, status)
		VALUES ($1, $2, $3)
	`
	for _, rider := range assignment.AssignedRiders {
		if _, err = tx.ExecContext(ctx, riderQuery, assignment.ID, rider.UserID, rider.Status); err != nil {
			return fmt.Errorf("failed to insert assignment rider: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a single assignment with its riders
func (r *AssignmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := `SELECT` + assignmentColumns + assignmentJoins + `WHERE a.id = $1`

	var row assignmentRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracker.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return r.attachRiders(ctx, row.toModel())
}

// GetActiveForUser returns the rider's active assignment
func (r *AssignmentRepo) GetActiveForUser(ctx context.Context, userID uuid.UUID) (*models.Assignment, error) {
	query := `SELECT` + assignmentColumns + assignmentJoins + `
		JOIN assignment_riders ar ON ar.assignment_id = a.id
		WHERE ar.user_id = $1 AND a.status = $2
		ORDER BY a.created_at DESC
		LIMIT 1`

	var row assignmentRow
	err := r.db.GetContext(ctx, &row, query, userID, models.AssignmentStatusActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracker.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment for user: %w", err)
	}

	return r.attachRiders(ctx, row.toModel())
}

// GetActiveForDriver returns the driver's active assignment
func (r *AssignmentRepo) GetActiveForDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error) {
	query := `SELECT` + assignmentColumns + assignmentJoins + `
		WHERE a.driver_id = $1 AND a.status = $2
		ORDER BY a.created_at DESC
		LIMIT 1`

	var row assignmentRow
	err := r.db.GetContext(ctx, &row, query, driverID, models.AssignmentStatusActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracker.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment for driver: %w", err)
	}

	return r.attachRiders(ctx, row.toModel())
}

// List returns all assignments, newest first
func (r *AssignmentRepo) List(ctx context.Context) ([]models.Assignment, error) {
	query := `SELECT` + assignmentColumns + assignmentJoins + `ORDER BY a.created_at DESC`

	var rows []assignmentRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]models.Assignment, 0, len(rows))
	for i := range rows {
		assignment, err := r.attachRiders(ctx, rows[i].toModel())
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}

	return assignments, nil
}

// Delete removes an assignment and its rider rows
func (r *AssignmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM assignment_riders WHERE assignment_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete assignment riders: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return tracker.ErrAssignmentNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateRiderStatus moves one rider between pending/picked/dropped
func (r *AssignmentRepo) UpdateRiderStatus(ctx context.Context, assignmentID, userID uuid.UUID, status string) error {
	query := `
		UPDATE assignment_riders
		SET status = $1
		WHERE assignment_id = $2 AND user_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, assignmentID, userID)
	if err != nil {
		return fmt.Errorf("failed to update rider status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return tracker.ErrAssignmentNotFound
	}

	_, err = r.db.ExecContext(ctx, `UPDATE assignments SET updated_at = $1 WHERE id = $2`, time.Now(), assignmentID)
	if err != nil {
		return fmt.Errorf("failed to touch assignment: %w", err)
	}

	return nil
}

func (r *AssignmentRepo) attachRiders(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	query := `
		SELECT ar.user_id, u.fullname, ar.status
		FROM assignment_riders ar
		JOIN accounts u ON u.id = ar.user_id
		WHERE ar.assignment_id = $1
		ORDER BY u.fullname
	`

	var riders []models.AssignedRider
	if err := r.db.SelectContext(ctx, &riders, query, assignment.ID); err != nil {
		return nil, fmt.Errorf("failed to get assignment riders: %w", err)
	}
	assignment.AssignedRiders = riders

	return assignment, nil
}
