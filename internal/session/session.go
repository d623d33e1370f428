// Package session implements the request-scoped session capability on top of
// gorilla/sessions cookie store.
package session

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
)

const (
	// sessionKeyUser is the one recognized session value: the authenticated
	// identity. The password hash never enters the session.
	sessionKeyUser = "user"
)

func init() {
	// The cookie store serializes values with gob.
	gob.Register(models.SessionUser{})
}

// CookieSessionStore implements SessionStore with signed cookie sessions.
type CookieSessionStore struct {
	store      *sessions.CookieStore
	cookieName string
}

// NewCookieSessionStore creates a session store signing cookies with secret.
// maxAge is the cookie lifetime in seconds.
func NewCookieSessionStore(cookieName, secret string, maxAge int) (interfaces.SessionStore, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret cannot be empty")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieSessionStore{
		store:      store,
		cookieName: cookieName,
	}, nil
}

// Open returns the request's session, creating a fresh anonymous one for
// clients without a valid session cookie.
func (c *CookieSessionStore) Open(w http.ResponseWriter, r *http.Request) (interfaces.Session, error) {
	// Get returns a new empty session on a missing or undecodable cookie, so
	// a tampered cookie degrades to an anonymous session rather than an error.
	s, err := c.store.Get(r, c.cookieName)
	if err != nil && s == nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return &cookieSession{session: s, w: w, r: r}, nil
}

// cookieSession is one client's session for the duration of one request.
type cookieSession struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
}

// User returns the authenticated identity, if any.
func (s *cookieSession) User() (models.SessionUser, bool) {
	user, ok := s.session.Values[sessionKeyUser].(models.SessionUser)
	return user, ok
}

// SetUser records the authenticated identity and saves the session.
func (s *cookieSession) SetUser(user models.SessionUser) error {
	s.session.Values[sessionKeyUser] = user
	if err := s.session.Save(s.r, s.w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Destroy invalidates the session and expires its cookie.
func (s *cookieSession) Destroy() error {
	for key := range s.session.Values {
		delete(s.session.Values, key)
	}
	s.session.Options.MaxAge = -1
	if err := s.session.Save(s.r, s.w); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
