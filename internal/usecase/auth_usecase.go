package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// RegisterInput is the registration request body.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued session token and the stored username.
type LoginOutput struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthUsecase defines registration, login and token authorization.
// Sessions are stateless: there is no server-side revocation, logout is a
// client-side token discard.
type AuthUsecase interface {
	// Register creates an account under the normalized username. Fails with
	// a conflict when the username is already taken.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues a signed session token with a
	// fixed expiry.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize verifies a bearer token and resolves it to the account it
	// was issued for.
	Authorize(ctx context.Context, token string) (*entity.Account, error)
}
