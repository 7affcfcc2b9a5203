package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every request with method, path, status,
// latency and the authenticated account when one is present.
func RequestLoggerMiddleware(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			status := c.Response().Status
			userID := "anonymous"
			if id := c.Get(ContextKeyUserID); id != nil {
				userID = fmt.Sprintf("%v", id)
			}

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.Int("status", status),
				logger.Duration("latency", time.Since(start)),
				logger.String("client_ip", c.RealIP()),
				logger.String("user_id", userID),
			}

			switch {
			case status >= 500:
				log.Error("request failed", fields...)
			case status >= 400:
				log.Warn("request rejected", fields...)
			default:
				log.Info("request completed", fields...)
			}

			return err
		}
	}
}
