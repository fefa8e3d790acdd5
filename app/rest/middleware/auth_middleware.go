package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// ContextKeyUser is the echo context key holding the verified caller
const ContextKeyUser = "user"

// AuthMiddleware resolves the caller identity on every protected route.
// Authentication itself happens in the platform identity provider; this
// middleware only verifies the credential and attaches the result.
type AuthMiddleware struct {
	verifier port.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier port.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth middleware that requires a verified caller
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			credential := m.extractCredential(c)
			if credential == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := m.verifier.VerifyCaller(ctx, credential)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthenticated) {
					m.logger.Error("caller verification failed", "error", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(ContextKeyUser, user)
			c.Set("user_id", user.ID)
			c.Set("user_role", string(user.Role))

			return next(c)
		}
	}
}

// RequireAdmin middleware that requires the admin role
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}

			return next(c)
		}
	}
}

// CurrentUser returns the verified caller set by RequireAuth, or nil
func CurrentUser(c echo.Context) *domain.LocalUser {
	user, ok := c.Get(ContextKeyUser).(*domain.LocalUser)
	if !ok {
		return nil
	}
	return user
}

// extractCredential extracts the caller credential from the request.
// Browser callers send the identity provider's session cookie; API
// callers send a bearer or session token header.
func (m *AuthMiddleware) extractCredential(c echo.Context) string {
	if cookieHeader := c.Request().Header.Get("Cookie"); cookieHeader != "" && strings.Contains(cookieHeader, "ory_kratos_session") {
		return cookieHeader
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
