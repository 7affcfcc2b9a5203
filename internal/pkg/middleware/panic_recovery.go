package middleware

import (
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and answers 500 instead of dropping the connection.
func PanicRecoveryMiddleware(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.InternalServerErrorResponse(c, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}
