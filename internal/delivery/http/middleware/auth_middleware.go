package middleware

import (
	"strings"

	"tastebook/internal/delivery/http/response"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccount is the echo context key under which the authenticated
// account is attached for downstream handlers.
const ContextKeyAccount = "account"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer session token and resolves it to an
// account before the protected handler runs. Missing header, malformed
// token, bad signature and expiry all fail with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		account, err := m.authUC.Authorize(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Attach the resolved account for handlers to use
		c.Set(ContextKeyAccount, account)

		return next(c)
	}
}
