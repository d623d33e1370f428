package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haguru/torii/internal/models"
)

const (
	testCookieName = "torii_session"
	testSecret     = "test-secret-this_should_be_32_bytes"
)

// replay builds a new request carrying the cookies a previous response set.
func replay(t *testing.T, rr *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestNewCookieSessionStore_EmptySecret(t *testing.T) {
	if _, err := NewCookieSessionStore(testCookieName, "", 3600); err == nil {
		t.Error("NewCookieSessionStore() error = nil, want error for empty secret")
	}
}

func TestCookieSessionStore_AnonymousByDefault(t *testing.T) {
	store, err := NewCookieSessionStore(testCookieName, testSecret, 3600)
	if err != nil {
		t.Fatalf("NewCookieSessionStore() error = %v", err)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	session, err := store.Open(rr, req)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := session.User(); ok {
		t.Error("fresh session already carries a user")
	}
}

func TestCookieSessionStore_UserRoundTrip(t *testing.T) {
	store, err := NewCookieSessionStore(testCookieName, testSecret, 3600)
	if err != nil {
		t.Fatalf("NewCookieSessionStore() error = %v", err)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/processLogin", nil)

	session, err := store.Open(rr, req)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	want := models.SessionUser{Username: "alice", Email: "a@x.com"}
	if err := session.SetUser(want); err != nil {
		t.Fatalf("SetUser() error = %v", err)
	}

	// A follow-up request presenting the cookie sees the same identity.
	next := replay(t, rr)
	session, err = store.Open(httptest.NewRecorder(), next)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, ok := session.User()
	if !ok {
		t.Fatal("User() not found after round trip")
	}
	if got != want {
		t.Errorf("User() = %+v, want %+v", got, want)
	}
}

func TestCookieSessionStore_Destroy(t *testing.T) {
	store, err := NewCookieSessionStore(testCookieName, testSecret, 3600)
	if err != nil {
		t.Fatalf("NewCookieSessionStore() error = %v", err)
	}

	// Log a user in.
	loginRR := httptest.NewRecorder()
	session, err := store.Open(loginRR, httptest.NewRequest(http.MethodPost, "/processLogin", nil))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := session.SetUser(models.SessionUser{Username: "alice"}); err != nil {
		t.Fatalf("SetUser() error = %v", err)
	}

	// Destroy the session on a logout request carrying the cookie.
	logoutRR := httptest.NewRecorder()
	session, err = store.Open(logoutRR, replay(t, loginRR))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := session.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}

	// Whatever cookie the logout response sets no longer authenticates.
	session, err = store.Open(httptest.NewRecorder(), replay(t, logoutRR))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := session.User(); ok {
		t.Error("session still carries a user after Destroy()")
	}
}

func TestCookieSessionStore_TamperedCookieIsAnonymous(t *testing.T) {
	store, err := NewCookieSessionStore(testCookieName, testSecret, 3600)
	if err != nil {
		t.Fatalf("NewCookieSessionStore() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged-value"})

	session, err := store.Open(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := session.User(); ok {
		t.Error("forged cookie produced an authenticated session")
	}
}
