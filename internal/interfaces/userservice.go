package interfaces

import (
	"context"

	"github.com/haguru/torii/internal/models"
)

type UserService interface {
	// CreateUser registers a new account. The returned user never carries the
	// password hash.
	CreateUser(ctx context.Context, username, email, password string) (*models.User, error)

	// AuthenticateUser verifies a username/password pair. Unknown user and
	// wrong password both yield userservice.ErrAuthFailed.
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
}
