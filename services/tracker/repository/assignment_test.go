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

	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker"
)

func setupAssignmentRepoTest(t *testing.T) (*AssignmentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAssignmentRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func assignmentRows(id, driverID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "driver_id", "driver_name", "bus_number",
		"pickup_label", "pickup_lat", "pickup_lon",
		"drop_label", "drop_lat", "drop_lon",
		"status", "notes", "assignment_date", "created_at", "updated_at",
	}).AddRow(
		id, driverID, "Driver One", "B-7",
		"Depot", -6.2, 106.8,
		"Campus", -6.3, 106.9,
		models.AssignmentStatusActive, "", time.Now(), time.Now(), time.Now(),
	)
}

func riderRows(userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "fullname", "status"}).
		AddRow(userID, "Rider One", models.RiderStatusPending)
}

func TestGetActiveForUser(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	assignmentID := uuid.New()
	driverID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery("SELECT(.|\n)+FROM assignments").
		WithArgs(userID, models.AssignmentStatusActive).
		WillReturnRows(assignmentRows(assignmentID, driverID))
	mock.ExpectQuery("SELECT ar.user_id, u.fullname, ar.status").
		WithArgs(assignmentID).
		WillReturnRows(riderRows(userID))

	assignment, err := repo.GetActiveForUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, assignmentID, assignment.ID)
	assert.Equal(t, "Driver One", assignment.DriverName)
	assert.Equal(t, "Depot", assignment.Pickup.Label)
	assert.InDelta(t, -6.2, assignment.Pickup.Latitude, 1e-9)
	require.Len(t, assignment.AssignedRiders, 1)
	assert.Equal(t, models.RiderStatusPending, assignment.AssignedRiders[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveForUser_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT(.|\n)+FROM assignments").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetActiveForUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, tracker.ErrAssignmentNotFound)
}

func TestGetActiveForDriver(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	assignmentID := uuid.New()
	driverID := uuid.New()

	mock.ExpectQuery("SELECT(.|\n)+FROM assignments").
		WithArgs(driverID, models.AssignmentStatusActive).
		WillReturnRows(assignmentRows(assignmentID, driverID))
	mock.ExpectQuery("SELECT ar.user_id, u.fullname, ar.status").
		WithArgs(assignmentID).
		WillReturnRows(riderRows(uuid.New()))

	assignment, err := repo.GetActiveForDriver(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, driverID, assignment.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignment_InsertsRiders(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO assignments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO assignment_riders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO assignment_riders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assignment := &models.Assignment{
		DriverID: uuid.New(),
		Pickup:   models.Waypoint{Label: "Depot", Latitude: -6.2, Longitude: 106.8},
		Drop:     models.Waypoint{Label: "Campus", Latitude: -6.3, Longitude: 106.9},
		Status:   models.AssignmentStatusActive,
		AssignedRiders: []models.AssignedRider{
			{UserID: uuid.New(), Status: models.RiderStatusPending},
			{UserID: uuid.New(), Status: models.RiderStatusPending},
		},
	}
	err := repo.Create(context.Background(), assignment)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, assignment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAssignment_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assignment_riders").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM assignments").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, tracker.ErrAssignmentNotFound)
}

func TestUpdateRiderStatus_UnknownRider(t *testing.T) {
	repo, mock, cleanup := setupAssignmentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE assignment_riders").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRiderStatus(context.Background(), uuid.New(), uuid.New(), models.RiderStatusPicked)

	assert.ErrorIs(t, err, tracker.ErrAssignmentNotFound)
}
