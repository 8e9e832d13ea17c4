package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/tack/internal/tack/http"
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/redis"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite"
	"github.com/aussiebroadwan/tack/pkg/cryptox"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	redisConnectTimeout = 5 * time.Second
)

// Application encapsulates the tack API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db          store.Store
	revocations *redis.Revocations // nil unless REDIS_URL is set
	mailer      mail.Mailer

	// Services
	services            *service.Services
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tack",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initRevocations(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initMailer()

	if err := app.initServices(); err != nil {
		app.closeStores()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("tack starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeStores()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tack...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.closeStores(); err != nil {
		return err
	}

	app.logger.Info("tack stopped")
	return nil
}

func (app *Application) closeStores() error {
	if app.revocations != nil {
		if err := app.revocations.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initRevocations connects to Redis when configured. Without it the
// denylist lives in the database.
func (app *Application) initRevocations() error {
	if app.cfg.RedisURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	rev, err := redis.Connect(ctx, app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect revocation cache: %w", err)
	}
	app.revocations = rev
	app.logger.Info("refresh token revocations stored in redis")
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mailer = mail.LogMailer{}
		app.logger.Warn("SMTP_HOST not set, emails will only be logged")
		return
	}

	app.mailer = mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	})
}

// secret returns the configured secret or, outside prod, a random one.
// Generated secrets do not survive a restart, so every session is lost.
func (app *Application) secret(name, value string) ([]byte, error) {
	if value != "" {
		return []byte(value), nil
	}

	generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", name, err)
	}
	app.logger.Warn("token secret not configured, using a generated one", "secret", name)
	return []byte(generated), nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	accessSecret, err := app.secret("TACK_ACCESS_TOKEN_SECRET", app.cfg.AccessTokenSecret)
	if err != nil {
		return err
	}
	refreshSecret, err := app.secret("TACK_REFRESH_TOKEN_SECRET", app.cfg.RefreshTokenSecret)
	if err != nil {
		return err
	}

	revocations := app.db.Revocations()
	if app.revocations != nil {
		revocations = app.revocations
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		Issuer:        app.cfg.Issuer,
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessTTL:     app.cfg.AccessTokenTTL,
		RefreshTTL:    app.cfg.RefreshTokenTTL,
		Leeway:        30 * time.Second,
	}, revocations)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.services = service.New(service.Deps{
		Store:              app.db,
		Tokens:             tokens,
		Mailer:             app.mailer,
		Composer:           mail.Composer{BaseURL: app.cfg.AppBaseURL},
		RevealUnknownEmail: app.cfg.RevealUnknownEmail,
	})

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	app.housekeepingService.Revocations = revocations

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	cookies := httpx.DevelopmentCookies
	if app.cfg.Production() {
		cookies = httpx.ProductionCookies
	}

	router := httpapi.NewRouter(
		app.services,
		app.db,
		cookies,
		app.cfg.AllowedOrigins,
		BuildVersion,
		app.logger,
	)
	if app.revocations != nil {
		router.AddReadinessCheck("redis", app.revocations)
	}
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
