package middleware

import (
	"mesto/internal/delivery/http/response"
	"mesto/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "jwt"

// userIDKey is the echo context key holding the authenticated user id.
const userIDKey = "userID"

// AuthMiddleware validates the session cookie on every protected route.
// It is the single enforcement point for "is there a valid session";
// handlers only ever check ownership.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate extracts the token from the session cookie, verifies it
// and attaches the resolved user id to the request context. Any failure
// short-circuits with a generic 401 and never invokes the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
		}

		claims, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
		}

		c.Set(userIDKey, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user id attached by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(userIDKey).(string)

	return id, ok && id != ""
}
