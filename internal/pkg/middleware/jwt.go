package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/transhub/shuttletrack/internal/pkg/jwt"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
)

// Context keys populated by the auth middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for bearer token authentication.
// Roles, when given, restrict the route to accounts holding one of them.
func JWTAuthMiddleware(config models.JWTConfig, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := claims[ContextKeyUserID]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := claims["role"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			if len(roles) > 0 && !roleAllowed(role, roles) {
				return utils.ForbiddenResponse(c, "Insufficient role for this operation")
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, role)

			return next(c)
		}
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// UserIDFromContext reads the authenticated account ID the middleware stored
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok
}
