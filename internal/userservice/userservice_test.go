package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/haguru/torii/internal/hasher"
	"github.com/haguru/torii/internal/interfaces/mocks"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/userstore"
	"github.com/haguru/torii/pkg/zerolog"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(store *mocks.MockUserStore) *UserService {
	return NewUserService(store, hasher.NewBcryptHasher(bcrypt.MinCost), zerolog.NewZerologLogger("userservice_test"))
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create strips the hash", func(t *testing.T) {
		store := mocks.NewMockUserStore(t)
		store.On("Create", mock.Anything, "alice", "a@x.com", mock.AnythingOfType("string")).
			Return(&models.User{
				ID:           "id-1",
				Username:     "alice",
				Email:        "a@x.com",
				PasswordHash: "stored-digest",
			}, nil)

		service := newTestService(store)
		user, err := service.CreateUser(ctx, "alice", "a@x.com", "secret1")
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if user.Username != "alice" || user.Email != "a@x.com" {
			t.Errorf("CreateUser() = %+v, want alice/a@x.com", user)
		}
		if user.PasswordHash != "" {
			t.Error("CreateUser() leaked the password hash to the caller")
		}
	})

	t.Run("store receives a verifiable digest, never the plaintext", func(t *testing.T) {
		store := mocks.NewMockUserStore(t)
		var storedHash string
		store.On("Create", mock.Anything, "alice", "", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				storedHash = args.String(3)
			}).
			Return(&models.User{ID: "id-1", Username: "alice"}, nil)

		service := newTestService(store)
		if _, err := service.CreateUser(ctx, "alice", "", "secret1"); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if storedHash == "secret1" {
			t.Fatal("plaintext password reached the store")
		}
		if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret1")) != nil {
			t.Error("stored digest does not verify against the original password")
		}
	})

	t.Run("empty fields are rejected before the store is touched", func(t *testing.T) {
		tests := []struct {
			name     string
			username string
			password string
		}{
			{name: "empty username", username: "", password: "secret1"},
			{name: "empty password", username: "alice", password: ""},
			{name: "both empty", username: "", password: ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := mocks.NewMockUserStore(t)
				service := newTestService(store)

				_, err := service.CreateUser(ctx, tt.username, "a@x.com", tt.password)
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("CreateUser() error = %v, want ErrInvalidInput", err)
				}
				store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("duplicate username propagates unchanged", func(t *testing.T) {
		store := mocks.NewMockUserStore(t)
		store.On("Create", mock.Anything, "alice", "a@x.com", mock.AnythingOfType("string")).
			Return(nil, userstore.ErrDuplicateUsername)

		service := newTestService(store)
		_, err := service.CreateUser(ctx, "alice", "a@x.com", "secret1")
		if !errors.Is(err, ErrDuplicateUsername) {
			t.Errorf("CreateUser() error = %v, want ErrDuplicateUsername", err)
		}
	})
}

func TestUserService_AuthenticateUser(t *testing.T) {
	ctx := context.Background()

	digest, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	storedUser := &models.User{
		ID:           "id-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(digest),
	}

	t.Run("correct password returns the user without the hash", func(t *testing.T) {
		store := mocks.NewMockUserStore(t)
		store.On("FindByUsername", mock.Anything, "alice").Return(storedUser, nil)

		service := newTestService(store)
		user, err := service.AuthenticateUser(ctx, "alice", "secret1")
		if err != nil {
			t.Fatalf("AuthenticateUser() error = %v", err)
		}
		if user.Username != "alice" || user.Email != "a@x.com" {
			t.Errorf("AuthenticateUser() = %+v, want alice/a@x.com", user)
		}
		if user.PasswordHash != "" {
			t.Error("AuthenticateUser() leaked the password hash to the caller")
		}
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		wrongPassStore := mocks.NewMockUserStore(t)
		wrongPassStore.On("FindByUsername", mock.Anything, "alice").Return(storedUser, nil)

		unknownStore := mocks.NewMockUserStore(t)
		unknownStore.On("FindByUsername", mock.Anything, "mallory").Return(nil, userstore.ErrNotFound)

		_, wrongPassErr := newTestService(wrongPassStore).AuthenticateUser(ctx, "alice", "wrong")
		_, unknownErr := newTestService(unknownStore).AuthenticateUser(ctx, "mallory", "secret1")

		if !errors.Is(wrongPassErr, ErrAuthFailed) {
			t.Errorf("wrong password error = %v, want ErrAuthFailed", wrongPassErr)
		}
		if !errors.Is(unknownErr, ErrAuthFailed) {
			t.Errorf("unknown user error = %v, want ErrAuthFailed", unknownErr)
		}
		if !errors.Is(wrongPassErr, unknownErr) && wrongPassErr.Error() != unknownErr.Error() {
			t.Error("wrong password and unknown user are distinguishable by error content")
		}
	})

	t.Run("store failure is not reported as auth failure", func(t *testing.T) {
		store := mocks.NewMockUserStore(t)
		store.On("FindByUsername", mock.Anything, "alice").
			Return(nil, errors.New("connection reset"))

		service := newTestService(store)
		_, err := service.AuthenticateUser(ctx, "alice", "secret1")
		if err == nil {
			t.Fatal("AuthenticateUser() error = nil, want store error")
		}
		if errors.Is(err, ErrAuthFailed) {
			t.Error("store failure was masked as ErrAuthFailed")
		}
	})
}
