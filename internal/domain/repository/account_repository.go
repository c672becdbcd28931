package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the username.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the operations for account persistence.
// Accounts live in their own store, independent of the recipe catalog.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	// Returns ErrAccountNotFound when no such account exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its normalized username.
	// Returns ErrAccountNotFound when no such account exists.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account. The storage layer enforces username
	// uniqueness; a violation surfaces as the domain conflict error so the
	// check-then-insert race cannot create duplicates.
	Create(ctx context.Context, account *entity.Account) error
}
