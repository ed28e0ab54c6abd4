package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace and returns a 500 response instead of crashing the process.
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 4<<10)
					length := runtime.Stack(stack, false)

					zl.Error("panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(stack[:length])),
					)

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
						fmt.Sprintf("internal server error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
