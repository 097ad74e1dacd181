package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and turns them into a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("Panic recovered",
						logger.Any("panic", r),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("stacktrace", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
							"success": false,
							"error":   "Internal server error",
							"code":    http.StatusInternalServerError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
