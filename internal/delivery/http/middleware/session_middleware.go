package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/identity"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the optional caller session. Login state is
// binary: a valid bearer token attaches an identity to the request context,
// no token means the caller stays anonymous. Only a malformed or invalid
// token is rejected here; whether a route needs identity is the workflows'
// decision.
type SessionMiddleware struct {
	sessionSvc service.SessionService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionSvc service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessionSvc: sessionSvc}
}

// Resolve extracts and verifies the bearer token when present.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ident, err := m.sessionSvc.Authenticate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired session token")
		}

		ctx := identity.WithIdentity(c.Request().Context(), ident)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
