package handler

import (
	"log/slog"
	"net/http"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/response"
	"tastebook/internal/domain/entity"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account registration and login.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// Never echo credentials back; the body is a bare confirmation.
	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles the login request and returns the session token together
// with the stored username.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Me returns the account resolved from the bearer token. It exists so
// clients can verify a stored token and is the template for future
// protected routes.
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := c.Get(middleware.ContextKeyAccount).(*entity.Account)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No account resolved for request")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"account_id": account.ID.String(),
		"username":   account.Username,
	})
}
