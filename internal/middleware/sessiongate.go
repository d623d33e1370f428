package middleware

import (
	"net/http"

	"github.com/haguru/torii/internal/interfaces"
)

const (
	// MsgLoginRequired is shown on the login view when an anonymous request
	// hits a protected path.
	MsgLoginRequired = "You need to log in first"
)

// RequireLogin gates protected handlers on session state. Anonymous requests
// never reach the wrapped handler; the login view is rendered instead. The
// gate only reads the session, it never mutates it.
func RequireLogin(sessions interfaces.SessionStore, renderer interfaces.Renderer, logger interfaces.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Open(w, r)
			if err != nil {
				logger.Error("Failed to open session", "path", r.URL.Path, "error", err)
				renderLogin(w, renderer, logger)
				return
			}

			if _, ok := session.User(); !ok {
				renderLogin(w, renderer, logger)
				return
			}

			next(w, r)
		}
	}
}

func renderLogin(w http.ResponseWriter, renderer interfaces.Renderer, logger interfaces.Logger) {
	err := renderer.Render(w, "login", map[string]interface{}{
		"error": MsgLoginRequired,
	})
	if err != nil {
		// Rendering failures must not take the process down; the request
		// simply completes without a body.
		logger.Error("Failed to render login view", "error", err)
	}
}
