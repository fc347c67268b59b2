package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Authenticator is the slice of the auth usecase the middleware needs.
type Authenticator interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	TouchLastActive(ctx context.Context, uid string)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Authenticate verifies the bearer token and stores the caller's uid in the
// request context. WebSocket upgrades cannot set headers from a browser, so
// a "token" query parameter is accepted as a fallback.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken := bearerToken(c)
		if idToken == "" {
			idToken = c.QueryParam("token")
		}
		if idToken == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
		}

		uid, err := m.auth.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)
		go m.auth.TouchLastActive(context.Background(), uid)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
