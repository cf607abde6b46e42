package middleware

import (
	"net/http"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/labstack/echo/v4"
)

// The authentication collaborator resolves credentials upstream and forwards
// the caller identity in these headers; this layer only extracts it.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	identityKey = "caller-identity"
)

type Identity struct {
	UserID string
	Role   models.Role
}

// RequireIdentity rejects requests without a resolved caller identity.
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get(HeaderUserID)
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
		}

		role := models.Role(c.Request().Header.Get(HeaderUserRole))
		if role == "" {
			role = models.RoleCustomer
		}

		c.Set(identityKey, Identity{UserID: userID, Role: role})
		return next(c)
	}
}

func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
