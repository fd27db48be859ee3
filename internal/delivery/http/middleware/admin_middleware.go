package middleware

import (
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates admin routes on the remote-backed capability check.
// This is a routing convenience, not a security boundary: the remote service
// re-checks authorization on every admin call.
type AdminMiddleware struct {
	profiles usecase.ProfileUsecase
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(profiles usecase.ProfileUsecase) *AdminMiddleware {
	return &AdminMiddleware{profiles: profiles}
}

// RequireAdmin rejects callers the remote service does not report as admins.
// It must be used AFTER the session middleware.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, err := m.profiles.IsCallerAdmin(c.Request().Context())
		if err != nil {
			return err
		}
		if !isAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "This action requires an administrator")
		}

		return next(c)
	}
}
