// userservice.go
package userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/userstore"
	"github.com/haguru/torii/pkg/helper"
)

var (
	// ErrInvalidInput is returned by CreateUser when a required field is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername is returned by CreateUser when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAuthFailed is returned by AuthenticateUser for both an unknown user
	// and a wrong password, so callers cannot enumerate usernames from the
	// error.
	ErrAuthFailed = errors.New("invalid username or password")
)

type UserService struct {
	UserStore interfaces.UserStore
	Hasher    interfaces.PasswordHasher
	Logger    interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(store interfaces.UserStore, hasher interfaces.PasswordHasher, logger interfaces.Logger) *UserService {
	return &UserService{
		UserStore: store,
		Hasher:    hasher,
		Logger:    logger,
	}
}

// CreateUser hashes the password and adds the user via the credential store.
// The returned user carries no password hash.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if username == "" || password == "" {
		s.Logger.Warn(MsgMissingFields, "func", funcName, "user", username)
		return nil, ErrInvalidInput
	}

	s.Logger.Info("Creating user", "func", funcName, "user", username)
	passwordHash, err := s.Hasher.Hash(password)
	if err != nil {
		s.Logger.Error(MsgFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", MsgFailedToHashPassword, err)
	}

	user, err := s.UserStore.Create(ctx, username, email, passwordHash)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateUsername) {
			s.Logger.Warn(MsgFailedToCreateUser, "func", funcName, "user", username, "error", err)
			return nil, ErrDuplicateUsername
		}
		s.Logger.Error(MsgFailedToCreateUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", MsgFailedToCreateUser, err)
	}

	s.Logger.Info("User created successfully", "func", funcName, "user", username, "ID", user.ID)
	s.Logger.Debug("Exiting function", "func", funcName, "user", username)
	return user.Public(), nil
}

// AuthenticateUser verifies a user's credentials and returns the user with
// the password hash stripped, or ErrAuthFailed.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	user, err := s.UserStore.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			s.Logger.Warn(MsgUserNotFound, "func", funcName, "user", username)
			return nil, ErrAuthFailed
		}
		s.Logger.Error(MsgRetrievingUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", MsgRetrievingUser, err)
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		s.Logger.Warn(MsgInvalidPassword, "func", funcName, "user", username)
		return nil, ErrAuthFailed
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	s.Logger.Debug("Exiting function", "func", funcName, "user", username)
	return user.Public(), nil
}
