package app

import (
	"context"
	"fmt"

	"github.com/haguru/torii/config"
	"github.com/haguru/torii/internal/hasher"
	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/middleware"
	"github.com/haguru/torii/internal/render"
	"github.com/haguru/torii/internal/routes"
	"github.com/haguru/torii/internal/server"
	"github.com/haguru/torii/internal/session"
	"github.com/haguru/torii/internal/userservice"
	memoryUserStore "github.com/haguru/torii/internal/userstore/memory"
	mongoUserStore "github.com/haguru/torii/internal/userstore/mongo"
	postgresUserStore "github.com/haguru/torii/internal/userstore/postgres"
	"github.com/haguru/torii/pkg/metrics"
	"github.com/haguru/torii/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
)

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and wires the
// credential store, user service, session store and routes together.
type App struct {
	Server interfaces.Server
	Config *config.ServiceConfig
	Logger interfaces.Logger
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		// Validation failed, handle the error
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize server and metrics
	serverInstance := server.NewServer(cfg.Host, cfg.Port, logger)
	app.Server = serverInstance

	metricsInstance := app.initializeMetrics()

	userStore, err := app.initializeUserStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %v", err)
	}

	passwordHasher := hasher.NewBcryptHasher(bcrypt.DefaultCost)
	userService := userservice.NewUserService(userStore, passwordHasher, logger)

	sessions, err := session.NewCookieSessionStore(
		cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.MaxAgeSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %v", err)
	}

	renderer, err := render.NewTemplateRenderer(cfg.Web.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %v", err)
	}

	route := routes.NewRoute(metricsInstance, userService, sessions, renderer, logger, validator)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	err = app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	err = app.Server.AddRoute(routes.LoginRouteAPI, route.LoginPage)
	if err != nil {
		return nil, fmt.Errorf("failed to add login route: %v", err)
	}

	err = app.Server.AddRoute(routes.LogoutRouteAPI, route.Logout)
	if err != nil {
		return nil, fmt.Errorf("failed to add logout route: %v", err)
	}

	err = app.Server.AddRoute(routes.SignupRouteAPI, route.Signup)
	if err != nil {
		return nil, fmt.Errorf("failed to add signup route: %v", err)
	}

	err = app.Server.AddRoute(routes.ProcessLoginRouteAPI, route.ProcessLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to add processLogin route: %v", err)
	}

	// The home page is the protected path set; the session gate fronts it.
	gate := middleware.RequireLogin(sessions, renderer, logger)
	err = app.Server.AddRoute(routes.HomeRouteAPI, gate(route.Home))
	if err != nil {
		return nil, fmt.Errorf("failed to add home route: %v", err)
	}

	err = app.Server.AddStaticRoute(routes.StaticRoutePrefix, cfg.Web.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("failed to add static route: %v", err)
	}

	return app, nil
}

func (app *App) Run() error {
	// start the server
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.SignupRequestsTotal, routes.SignupRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.SignupSuccessTotal, routes.SignupSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.SignupErrorsTotal, routes.SignupErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.SignupDurationSeconds,
		routes.SignupDurationSecondsHelp,
		routes.SignupDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.LoginRequestsTotal, routes.LoginRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.LoginSuccessTotal, routes.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.LoginFailedTotal, routes.LoginFailedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.LoginDurationSeconds,
		routes.LoginDurationSecondsHelp,
		routes.LoginDurationSecondsBuckets)

	return appMetrics
}

func (app *App) initializeUserStore() (interfaces.UserStore, error) {
	var userStore interfaces.UserStore
	var err error

	ctx := context.Background()

	switch app.Config.Database.Type {
	case "memory":
		// Process-local store; credentials live for the process lifetime.
		userStore = memoryUserStore.NewMemoryUserStore()

	case "mongo":
		// Initialize MongoDB-backed store
		userStore, err = mongoUserStore.NewMongoUserStore(ctx, &app.Config.Database.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB store: %v", err)
		}

	case "postgres":
		// Initialize PostgreSQL-backed store
		userStore, err = postgresUserStore.NewPostgresUserStore(ctx, &app.Config.Database.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL store: %v", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	// Ensure the unique-username index or table exists
	if err = userStore.EnsureIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indices: %v", err)
	}

	return userStore, nil
}
