package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/antarin-app/antarin/internal/pkg/jwt"
	"github.com/antarin-app/antarin/internal/utils"
)

const (
	// ContextUserID is the echo context key holding the authenticated user ID
	ContextUserID = "user_id"
	// ContextUserType is the echo context key holding the authenticated user type
	ContextUserType = "user_type"
)

// JWTAuth validates the bearer token and stores the actor's identity in the
// echo context. Handlers pass the actor ID explicitly into usecases.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Authorization header is required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid authorization header")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], secret)
			if err != nil {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			userID, _ := claims["user_id"].(string)
			userType, _ := claims["user_type"].(string)
			if userID == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Token has no subject")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserType, userType)

			return next(c)
		}
	}
}

// ActorID returns the authenticated user ID stored by JWTAuth
func ActorID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}
