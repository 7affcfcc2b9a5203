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

// AccountRepo is the Postgres-backed account repository
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// GetByEmail retrieves an account by email
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, email, fullname, role, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracker.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.Role == models.RoleDriver {
		info, err := r.getDriverInfo(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		account.DriverInfo = info
	}

	return &account, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT id, email, fullname, role, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracker.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.Role == models.RoleDriver {
		info, err := r.getDriverInfo(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		account.DriverInfo = info
	}

	return &account, nil
}

// Create inserts an account, plus the driver profile when the role is driver
func (r *AccountRepo) Create(ctx context.Context, account *models.Account, passwordHash string) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	account.PasswordHash = passwordHash
	account.IsActive = true

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (id, email, fullname, role, password_hash, is_active, created_at, updated_at)
		VALUES (:id, :email, :fullname, :role, :password_hash, :is_active, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	if account.Role == models.RoleDriver && account.DriverInfo != nil {
		account.DriverInfo.UserID = account.ID
		driverQuery := `
			INSERT INTO driver_info (user_id, bus_number, phone, license)
			VALUES (:user_id, :bus_number, :phone, :license)
		`
		if _, err = tx.NamedExecContext(ctx, driverQuery, account.DriverInfo); err != nil {
			return fmt.Errorf("failed to insert driver info: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByRole returns all active accounts with the given role
func (r *AccountRepo) ListByRole(ctx context.Context, role string) ([]models.Account, error) {
	query := `
		SELECT id, email, fullname, role, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE role = $1 AND is_active = true
		ORDER BY fullname
	`

	var accounts []models.Account
	if err := r.db.SelectContext(ctx, &accounts, query, role); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if role == models.RoleDriver {
		for i := range accounts {
			info, err := r.getDriverInfo(ctx, accounts[i].ID)
			if err != nil {
				return nil, err
			}
			accounts[i].DriverInfo = info
		}
	}

	return accounts, nil
}

func (r *AccountRepo) getDriverInfo(ctx context.Context, userID uuid.UUID) (*models.DriverInfo, error) {
	query := `
		SELECT user_id, bus_number, phone, license
		FROM driver_info
		WHERE user_id = $1
	`

	var info models.DriverInfo
	err := r.db.GetContext(ctx, &info, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Driver account without a profile row yet
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver info: %w", err)
	}

	return &info, nil
}
