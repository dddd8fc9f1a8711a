package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
	"github.com/talentlens/talentlens/pkg/jwt"
)

const (
	// UserContextKey is the echo context key for the authenticated user
	UserContextKey = "user"
	// UserIDContextKey is the echo context key for the authenticated user id
	UserIDContextKey = "user_id"
)

// AuthMiddleware validates JWTs and resolves the authenticated user
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	users      repositories.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *jwt.Manager, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		users:      users,
	}
}

// Authenticate returns an Echo middleware that validates the access token
// and sets "user" (*entities.User) and "user_id" (uuid.UUID) into context
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := m.jwtManager.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			user, err := m.users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unknown user")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusForbidden, "Account is deactivated")
			}

			// Best effort; an activity-stamp failure must not fail the request.
			_ = m.users.TouchLastActive(c.Request().Context(), user.ID)

			c.Set(UserContextKey, user)
			c.Set(UserIDContextKey, user.ID)
			return next(c)
		}
	}
}

// RequireRole returns an Echo middleware that checks the authenticated user's
// role. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
}

// GetUser retrieves the authenticated user from the echo context
func GetUser(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok
}

// GetUserID retrieves the authenticated user id from the echo context
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return id, ok
}

func extractToken(c echo.Context) string {
	// Try Authorization header first
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Try cookie as fallback
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
