package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/tracker"
)

// AuthHandler handles login and account management requests
type AuthHandler struct {
	authUC tracker.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC tracker.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login returns a role-bound login handler. The same flow backs the
// admin, user, and driver login endpoints.
func (h *AuthHandler) Login(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "invalid request body")
		}

		resp, err := h.authUC.Login(c.Request().Context(), role, &req)
		if err != nil {
			if errors.Is(err, tracker.ErrInvalidCredentials) {
				return utils.UnauthorizedResponse(c, "Invalid email or password")
			}
			logger.Error("Login failed",
				logger.String("role", role),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "")
		}

		return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
	}
}

// Register returns a role-bound registration handler for the admin screens
func (h *AuthHandler) Register(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RegisterAccountRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "invalid request body")
		}

		account, err := h.authUC.Register(c.Request().Context(), role, &req)
		if err != nil {
			logger.Error("Registration failed",
				logger.String("role", role),
				logger.ErrorField(err))
			return utils.BadRequestResponse(c, err.Error())
		}

		return utils.SuccessResponse(c, http.StatusCreated, "Account created", account)
	}
}

// ListAccounts returns a role-bound account listing handler
func (h *AuthHandler) ListAccounts(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		accounts, err := h.authUC.ListAccounts(c.Request().Context(), role)
		if err != nil {
			logger.Error("Failed to list accounts",
				logger.String("role", role),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "")
		}

		return utils.SuccessResponse(c, http.StatusOK, "Accounts retrieved", accounts)
	}
}
