package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/middleware"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	trackerhttp "github.com/transhub/shuttletrack/services/tracker/handler/http"
)

// TrackerHandler wires the tracker HTTP handlers onto an echo instance
type TrackerHandler struct {
	auth       *trackerhttp.AuthHandler
	location   *trackerhttp.LocationHandler
	assignment *trackerhttp.AssignmentHandler
	jwtConfig  models.JWTConfig
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(
	auth *trackerhttp.AuthHandler,
	location *trackerhttp.LocationHandler,
	assignment *trackerhttp.AssignmentHandler,
	jwtConfig models.JWTConfig,
) *TrackerHandler {
	return &TrackerHandler{
		auth:       auth,
		location:   location,
		assignment: assignment,
		jwtConfig:  jwtConfig,
	}
}

// RegisterRoutes registers the tracker API routes
func (h *TrackerHandler) RegisterRoutes(e *echo.Echo) {
	// Login routes, one per role
	e.POST("/admin/login", h.auth.Login(models.RoleAdmin))
	e.POST("/user/login", h.auth.Login(models.RoleUser))
	e.POST("/driver/login", h.auth.Login(models.RoleDriver))

	// Driver routes
	driverRoutes := e.Group("/driver-location",
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleDriver))
	driverRoutes.POST("/update", h.location.UpdateLocation)
	driverRoutes.POST("/offline", h.location.GoOffline)

	// Assignment routes
	assignmentRoutes := e.Group("/driver-assignment")
	assignmentRoutes.GET("/user",
		h.assignment.GetForUser,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleUser))
	assignmentRoutes.GET("/user/driver-location",
		h.location.DriverLocationForUser,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleUser))
	assignmentRoutes.GET("/driver",
		h.assignment.GetForDriver,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleDriver))
	assignmentRoutes.PATCH("/:id/user-status",
		h.assignment.UpdateRiderStatus,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleDriver, models.RoleAdmin))
	assignmentRoutes.POST("/assign",
		h.assignment.Create,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleAdmin))
	assignmentRoutes.GET("/all",
		h.assignment.List,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleAdmin))
	assignmentRoutes.DELETE("/:id",
		h.assignment.Delete,
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleAdmin))

	// Admin routes
	adminRoutes := e.Group("/admin",
		middleware.JWTAuthMiddleware(h.jwtConfig, models.RoleAdmin))
	adminRoutes.GET("/all-users", h.auth.ListAccounts(models.RoleUser))
	adminRoutes.GET("/all-drivers", h.auth.ListAccounts(models.RoleDriver))
	adminRoutes.POST("/register-user", h.auth.Register(models.RoleUser))
	adminRoutes.POST("/register-driver", h.auth.Register(models.RoleDriver))
	adminRoutes.GET("/nearby-drivers", h.location.NearbyDrivers)
}
