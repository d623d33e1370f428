package interfaces

import (
	"net/http"

	"github.com/haguru/torii/internal/models"
)

// SessionStore hands out the request-scoped session capability.
type SessionStore interface {
	// Open returns the session belonging to the requesting client, creating a
	// fresh anonymous one for clients that present no valid session cookie.
	Open(w http.ResponseWriter, r *http.Request) (Session, error)
}

// Session is the per-request view of one client's server-side session state.
// Its only recognized value is the authenticated user identity; the password
// hash must never be placed here.
type Session interface {
	// User returns the authenticated identity, if any.
	User() (models.SessionUser, bool)

	// SetUser records the authenticated identity.
	SetUser(user models.SessionUser) error

	// Destroy invalidates the session.
	Destroy() error
}
