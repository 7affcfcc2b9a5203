package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/middleware"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/tracker"
)

// LocationHandler handles driver location requests
type LocationHandler struct {
	locationUC tracker.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC tracker.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// UpdateLocation records the signed-in driver's position
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	snapshot, err := h.locationUC.PublishUpdate(c.Request().Context(), driverID, &req)
	if err != nil {
		logger.Error("Failed to update driver location",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", snapshot)
}

// GoOffline marks the signed-in driver offline
func (h *LocationHandler) GoOffline(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.locationUC.GoOffline(c.Request().Context(), driverID); err != nil {
		logger.Error("Failed to mark driver offline",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver marked offline", nil)
}

// DriverLocationForUser returns the signed-in rider's assigned driver snapshot
func (h *LocationHandler) DriverLocationForUser(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	snapshot, err := h.locationUC.SnapshotForRider(c.Request().Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrAssignmentNotFound):
			return utils.NotFoundResponse(c, "No active assignment found")
		case errors.Is(err, tracker.ErrLocationNotFound):
			return utils.NotFoundResponse(c, "Driver location not available")
		default:
			logger.Error("Failed to get driver location",
				logger.String("user_id", userID.String()),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved", snapshot)
}

// NearbyDrivers lists drivers near a point for the admin map
func (h *LocationHandler) NearbyDrivers(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}
	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	drivers, err := h.locationUC.NearbyDrivers(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		logger.Error("Failed to query nearby drivers", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}
