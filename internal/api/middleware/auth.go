package middleware

import (
	"net/http"
	"strings"

	"github.com/arvyah/wellnessapi/internal/service"
	"github.com/arvyah/wellnessapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the echo context key holding the authenticated user id
const UserIDContextKey = "user_id"

// BearerAuth creates the authorization middleware guarding private routes.
// It trusts the token's embedded claim and never touches the credential store.
func BearerAuth(tokens *service.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Missing Authorization header")
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid Authorization header format")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid or expired token")
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}
