package routes

var (
	SignupDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets  = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	HomeRouteAPI         = "/"
	LoginRouteAPI        = "/login"
	LogoutRouteAPI       = "/logout"
	SignupRouteAPI       = "/signup"
	ProcessLoginRouteAPI = "/processLogin"
	MetricsRouteAPI      = "/metrics"
	StaticRoutePrefix    = "/static/"

	// View names
	ViewLogin  = "login"
	ViewSignup = "signup"
	ViewHome   = "home"

	// Content-Type constants
	ContentType          = "Content-Type"
	ContentTypePlainText = "text/plain; charset=utf-8"
	ContentTypeHTML      = "text/html; charset=utf-8"

	// Error messages
	ErrMethodNotAllowed   = "method not allowed"
	ErrInvalidCredentials = "Invalid username or password"
	ErrMissingFields      = "Username and password are required"
	ErrUsernameTaken      = "That username is already taken"
	ErrSignupFailed       = "Could not create the account"
	ErrFailedToParseForm  = "failed to parse form body"
	ErrFailedToRenderView = "failed to render view"
	ErrFailedToSetSession = "failed to write session"

	// metrics constants
	SignupRequestsTotal       = "signup_requests_total"
	SignupRequestsTotalHelp   = "Total number of signup requests received"
	SignupSuccessTotal        = "signup_success_total"
	SignupSuccessTotalHelp    = "Total number of successful signup requests"
	SignupErrorsTotal         = "signup_errors_total"
	SignupErrorsTotalHelp     = "Total number of errors during signup requests"
	SignupDurationSeconds     = "signup_duration_seconds"
	SignupDurationSecondsHelp = "Duration of signup requests in seconds"
	LoginRequestsTotal        = "login_requests_total"
	LoginRequestsTotalHelp    = "Total number of login requests received"
	LoginSuccessTotal         = "login_success_total"
	LoginSuccessTotalHelp     = "Total number of successful login requests"
	LoginFailedTotal          = "login_failed_total"
	LoginFailedTotalHelp      = "Total number of failed login requests"
	LoginDurationSeconds      = "login_duration_seconds"
	LoginDurationSecondsHelp  = "Duration of login requests in seconds"
)
