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

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAccountRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func accountRows(id uuid.UUID, email, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "fullname", "role", "password_hash", "is_active", "created_at", "updated_at"}).
		AddRow(id, email, "Test Person", role, "hashed", true, time.Now(), time.Now())
}

func TestGetByEmail_User(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT id, email, fullname, role, password_hash").
		WithArgs("user@example.com").
		WillReturnRows(accountRows(id, "user@example.com", models.RoleUser))

	account, err := repo.GetByEmail(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.Nil(t, account.DriverInfo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_DriverLoadsProfile(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT id, email, fullname, role, password_hash").
		WithArgs("driver@example.com").
		WillReturnRows(accountRows(id, "driver@example.com", models.RoleDriver))
	mock.ExpectQuery("SELECT user_id, bus_number, phone, license").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "bus_number", "phone", "license"}).
			AddRow(id, "B-42", "+62812000000", "SIM-B"))

	account, err := repo.GetByEmail(context.Background(), "driver@example.com")

	require.NoError(t, err)
	require.NotNil(t, account.DriverInfo)
	assert.Equal(t, "B-42", account.DriverInfo.BusNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, fullname, role, password_hash").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, tracker.ErrAccountNotFound)
}

func TestCreate_UserAccount(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	account := &models.Account{
		Email:    "user@example.com",
		FullName: "New User",
		Role:     models.RoleUser,
	}
	err := repo.Create(context.Background(), account, "hashed-password")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.True(t, account.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DriverInsertsProfile(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO driver_info").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	account := &models.Account{
		Email:    "driver@example.com",
		FullName: "New Driver",
		Role:     models.RoleDriver,
		DriverInfo: &models.DriverInfo{
			BusNumber: "B-9",
			Phone:     "+62812000001",
		},
	}
	err := repo.Create(context.Background(), account, "hashed-password")

	require.NoError(t, err)
	assert.Equal(t, account.ID, account.DriverInfo.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRole(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, fullname, role, password_hash").
		WithArgs(models.RoleUser).
		WillReturnRows(accountRows(uuid.New(), "a@example.com", models.RoleUser).
			AddRow(uuid.New(), "b@example.com", "Other Person", models.RoleUser, "hashed", true, time.Now(), time.Now()))

	accounts, err := repo.ListByRole(context.Background(), models.RoleUser)

	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
