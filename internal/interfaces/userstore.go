package interfaces

import (
	"context"

	"github.com/haguru/torii/internal/models"
)

// UserStore defines the contract for the credential store: the authoritative
// keyed collection of registered users. Implementations must keep usernames
// unique and make the uniqueness check atomic with the insert.
type UserStore interface {
	// Create inserts a new user record. It returns userstore.ErrDuplicateUsername
	// if a user with the same username already exists. No two concurrent Create
	// calls for the same username may both succeed.
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)

	// FindByUsername returns the user with the given username, or
	// userstore.ErrNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// EnsureIndices prepares whatever backing schema the store needs
	// (unique index, table). No-op for in-memory stores.
	EnsureIndices(ctx context.Context) error

	// Close releases the store's backing resources.
	Close(ctx context.Context) error
}
