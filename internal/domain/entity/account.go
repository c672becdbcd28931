package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user of the service. Username holds the
// normalized (trimmed, lowercased) form used as the uniqueness key.
// PasswordHash is the only stored credential; the plaintext never leaves
// the registration and login paths.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
