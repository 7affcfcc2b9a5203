package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/middleware"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/tracker"
)

// AssignmentHandler handles assignment requests
type AssignmentHandler struct {
	assignmentUC tracker.AssignmentUC
}

// NewAssignmentHandler creates a new assignment HTTP handler
func NewAssignmentHandler(assignmentUC tracker.AssignmentUC) *AssignmentHandler {
	return &AssignmentHandler{assignmentUC: assignmentUC}
}

// Create stores a new assignment from the admin screen
func (h *AssignmentHandler) Create(c echo.Context) error {
	var req models.CreateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	assignment, err := h.assignmentUC.Create(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create assignment", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Assignment created", assignment)
}

// GetForUser returns the signed-in rider's active assignment
func (h *AssignmentHandler) GetForUser(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	assignment, err := h.assignmentUC.GetForUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, tracker.ErrAssignmentNotFound) {
			return utils.NotFoundResponse(c, "No active assignment found")
		}
		logger.Error("Failed to get assignment",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment retrieved", assignment)
}

// GetForDriver returns the signed-in driver's active assignment
func (h *AssignmentHandler) GetForDriver(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	assignment, err := h.assignmentUC.GetForDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, tracker.ErrAssignmentNotFound) {
			return utils.NotFoundResponse(c, "No active assignment found")
		}
		logger.Error("Failed to get assignment",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment retrieved", assignment)
}

// List returns all assignments for the admin screen
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.assignmentUC.List(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list assignments", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignments retrieved", assignments)
}

// Delete removes an assignment
func (h *AssignmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid assignment id")
	}

	if err := h.assignmentUC.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, tracker.ErrAssignmentNotFound) {
			return utils.NotFoundResponse(c, "Assignment not found")
		}
		logger.Error("Failed to delete assignment",
			logger.String("assignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment deleted", nil)
}

// UpdateRiderStatus moves one rider between pending/picked/dropped
func (h *AssignmentHandler) UpdateRiderStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid assignment id")
	}

	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	actorRole, _ := c.Get(middleware.ContextKeyRole).(string)

	var req models.UpdateRiderStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	assignment, err := h.assignmentUC.UpdateRiderStatus(c.Request().Context(), id, actorID, actorRole, &req)
	if err != nil {
		if errors.Is(err, tracker.ErrAssignmentNotFound) {
			return utils.NotFoundResponse(c, "Assignment not found")
		}
		logger.Error("Failed to update rider status",
			logger.String("assignment_id", id.String()),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rider status updated", assignment)
}
