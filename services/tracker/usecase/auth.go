package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/transhub/shuttletrack/internal/pkg/jwt"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker"
)

// AuthUsecase implements tracker.AuthUC
type AuthUsecase struct {
	accountRepo tracker.AccountRepo
	cfg         *models.Config
}

// NewAuthUsecase creates a new auth use case
func NewAuthUsecase(accountRepo tracker.AccountRepo, cfg *models.Config) *AuthUsecase {
	return &AuthUsecase{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

// Login verifies credentials for the given role and issues a bearer token.
// A valid password on an account with the wrong role is still rejected, so
// the driver login cannot be used by riders and vice versa.
func (uc *AuthUsecase) Login(ctx context.Context, role string, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	account, err := uc.accountRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == tracker.ErrAccountNotFound {
			return nil, tracker.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.Role != role || !account.IsActive {
		return nil, tracker.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, tracker.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(account.ID, account.Email, account.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   *account,
	}, nil
}

// Register creates an account with the given role. Driver registrations
// carry a bus number and phone in the driver profile.
func (uc *AuthUsecase) Register(ctx context.Context, role string, req *models.RegisterAccountRequest) (*models.Account, error) {
	if req == nil || req.Email == "" || req.FullName == "" || req.Password == "" {
		return nil, fmt.Errorf("email, full name, and password are required")
	}
	if role != models.RoleUser && role != models.RoleDriver && role != models.RoleAdmin {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		FullName: req.FullName,
		Role:     role,
	}
	if role == models.RoleDriver {
		account.DriverInfo = &models.DriverInfo{
			BusNumber: req.BusNumber,
			Phone:     req.Phone,
			License:   req.License,
		}
	}

	if err := uc.accountRepo.Create(ctx, account, string(hash)); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts returns all active accounts with the given role
func (uc *AuthUsecase) ListAccounts(ctx context.Context, role string) ([]models.Account, error) {
	return uc.accountRepo.ListByRole(ctx, role)
}
