package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/userstore"
)

// MemoryUserStore implements UserStore with a process-local map. It is the
// default backend: credentials live for the process lifetime only.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserStore creates an empty in-memory credential store.
func NewMemoryUserStore() interfaces.UserStore {
	return &MemoryUserStore{
		users: make(map[string]models.User),
	}
}

// Create inserts a new user. The duplicate check and the insert happen under
// one lock, so two concurrent creates for the same username cannot both
// succeed.
func (s *MemoryUserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, userstore.ErrDuplicateUsername
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.users[username] = user

	return &user, nil
}

// FindByUsername returns the stored user, or userstore.ErrNotFound.
func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, userstore.ErrNotFound
	}

	return &user, nil
}

// EnsureIndices is a no-op; uniqueness is enforced by the map key.
func (s *MemoryUserStore) EnsureIndices(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryUserStore) Close(ctx context.Context) error {
	return nil
}
