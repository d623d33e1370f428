package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/models/dto"
	"github.com/haguru/torii/internal/userservice"

	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	Sessions    interfaces.SessionStore
	Renderer    interfaces.Renderer
	Logger      interfaces.Logger
	validator   *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService,
	sessions interfaces.SessionStore, renderer interfaces.Renderer,
	logger interfaces.Logger, validator *structValidator.Validate,
) *Route {

	return &Route{
		Metrics:     metrics,
		UserService: userService,
		Sessions:    sessions,
		Renderer:    renderer,
		Logger:      logger,
		validator:   validator,
	}
}

// LoginPage handles GET /login and renders the login view.
func (r *Route) LoginPage(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	r.render(w, ViewLogin, nil)
}

// Logout handles GET /logout. It destroys the session and redirects home.
func (r *Route) Logout(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	session, err := r.Sessions.Open(w, req)
	if err != nil {
		r.Logger.Error("Failed to open session", "route", LogoutRouteAPI, "error", err)
		http.Redirect(w, req, HomeRouteAPI, http.StatusFound)
		return
	}

	if err := session.Destroy(); err != nil {
		r.Logger.Error("Failed to destroy session", "route", LogoutRouteAPI, "error", err)
	}

	http.Redirect(w, req, HomeRouteAPI, http.StatusFound)
}

// Signup handles GET /signup (render the signup view) and POST /signup
// (create the account, log the new user in, redirect home).
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.render(w, ViewSignup, nil)
	case http.MethodPost:
		r.processSignup(w, req)
	default:
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func (r *Route) processSignup(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupRequestsTotal)
	}

	if err := req.ParseForm(); err != nil {
		r.Logger.Error(ErrFailedToParseForm, "route", SignupRouteAPI, "error", err)
		r.signupError(w, http.StatusBadRequest, ErrMissingFields)
		return
	}

	signupForm := &dto.SignupFormDTO{
		Username: req.PostFormValue("username"),
		Email:    req.PostFormValue("email"),
		Password: req.PostFormValue("password"),
	}

	if err := r.validator.Struct(signupForm); err != nil {
		r.Logger.Warn("Signup form validation failed", "route", SignupRouteAPI, "error", err)
		r.signupError(w, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	user, err := r.UserService.CreateUser(req.Context(), signupForm.Username, signupForm.Email, signupForm.Password)
	if err != nil {
		if r.Metrics != nil {
			r.Metrics.IncCounter(SignupErrorsTotal)
		}
		switch {
		case errors.Is(err, userservice.ErrInvalidInput):
			r.signupError(w, http.StatusBadRequest, ErrMissingFields)
		case errors.Is(err, userservice.ErrDuplicateUsername):
			r.signupError(w, http.StatusConflict, ErrUsernameTaken)
		default:
			r.Logger.Error("Failed to create user", "route", SignupRouteAPI, "error", err)
			http.Error(w, ErrSignupFailed, http.StatusInternalServerError)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupSuccessTotal)
		duration := time.Since(startTime).Seconds()
		r.Metrics.ObserveHistogram(SignupDurationSeconds, duration)
	}

	r.setSessionUser(w, req, user)
	http.Redirect(w, req, HomeRouteAPI, http.StatusFound)
}

// ProcessLogin handles POST /processLogin. A successful authentication puts
// the user in the session and redirects home; any failure answers 401 with a
// fixed plain-text body.
func (r *Route) ProcessLogin(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginRequestsTotal)
	}

	if err := req.ParseForm(); err != nil {
		r.Logger.Error(ErrFailedToParseForm, "route", ProcessLoginRouteAPI, "error", err)
		r.loginFailed(w)
		return
	}

	loginForm := &dto.LoginFormDTO{
		Username: req.PostFormValue("username"),
		Password: req.PostFormValue("password"),
	}

	if err := r.validator.Struct(loginForm); err != nil {
		r.Logger.Warn("Login form validation failed", "route", ProcessLoginRouteAPI, "error", err)
		r.loginFailed(w)
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	user, err := r.UserService.AuthenticateUser(req.Context(), loginForm.Username, loginForm.Password)
	if err != nil {
		// Unknown user, wrong password and store failures all answer the
		// same way; nothing about the account leaks through the response.
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
			duration := time.Since(startTime).Seconds()
			r.Metrics.ObserveHistogram(LoginDurationSeconds, duration)
		}
		r.loginFailed(w)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginSuccessTotal)
		duration := time.Since(startTime).Seconds()
		r.Metrics.ObserveHistogram(LoginDurationSeconds, duration)
	}

	r.setSessionUser(w, req, user)
	http.Redirect(w, req, HomeRouteAPI, http.StatusFound)
}

// Home handles GET / for authenticated requests; the session gate keeps
// anonymous requests out before this handler runs.
func (r *Route) Home(w http.ResponseWriter, req *http.Request) {
	// "/" matches every otherwise-unrouted path on a ServeMux.
	if req.URL.Path != HomeRouteAPI {
		http.NotFound(w, req)
		return
	}

	if req.Method != http.MethodGet {
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var user models.SessionUser
	session, err := r.Sessions.Open(w, req)
	if err != nil {
		r.Logger.Error("Failed to open session", "route", HomeRouteAPI, "error", err)
	} else {
		user, _ = session.User()
	}

	r.render(w, ViewHome, map[string]interface{}{
		"user": user,
	})
}

func (r *Route) setSessionUser(w http.ResponseWriter, req *http.Request, user *models.User) {
	session, err := r.Sessions.Open(w, req)
	if err != nil {
		r.Logger.Error(ErrFailedToSetSession, "error", err)
		return
	}
	if err := session.SetUser(models.SessionUserFrom(user)); err != nil {
		r.Logger.Error(ErrFailedToSetSession, "user", user.Username, "error", err)
	}
}

func (r *Route) signupError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set(ContentType, ContentTypeHTML)
	w.WriteHeader(statusCode)
	r.render(w, ViewSignup, map[string]interface{}{
		"error": message,
	})
}

func (r *Route) loginFailed(w http.ResponseWriter) {
	w.Header().Set(ContentType, ContentTypePlainText)
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprint(w, ErrInvalidCredentials)
}

func (r *Route) render(w http.ResponseWriter, view string, data map[string]interface{}) {
	if err := r.Renderer.Render(w, view, data); err != nil {
		// A broken view must not crash the process; the request completes
		// without a body.
		r.Logger.Error(ErrFailedToRenderView, "view", view, "error", err)
	}
}
