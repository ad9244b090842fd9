package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const sessionContextKey = "session"

// AuthMiddleware restores the caller's session from the bearer token and
// guards role-restricted route groups.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate resolves the Authorization header into a session. An empty
// session, whatever the cause, is rejected uniformly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		session, err := m.sessionUC.Resume(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}
		if session == nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(sessionContextKey, session)

		return next(c)
	}
}

// RequireRole checks the session account's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := CurrentSession(c)
			if session == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: session missing")
			}

			if session.Account.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// CurrentSession returns the session stored by Authenticate, or nil.
func CurrentSession(c echo.Context) *usecase.Session {
	if session, ok := c.Get(sessionContextKey).(*usecase.Session); ok {
		return session
	}

	return nil
}

// CurrentAccountID returns the authenticated account's ID. The zero UUID
// means no session is attached.
func CurrentAccountID(c echo.Context) uuid.UUID {
	if session := CurrentSession(c); session != nil {
		return session.Account.ID
	}

	return uuid.Nil
}
