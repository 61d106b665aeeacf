package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/memory"
	"github.com/phrazzld/parky-api/internal/platform/metrics"
	"github.com/phrazzld/parky-api/internal/platform/postgres"
	"github.com/phrazzld/parky-api/internal/service"
	"github.com/phrazzld/parky-api/internal/service/auth"
	"github.com/phrazzld/parky-api/internal/store"
)

// storeSet groups the repositories one backend provides.
type storeSet struct {
	parks  store.NationalParkStore
	trails store.TrailStore
	users  store.UserStore
}

func postgresStores(db *sqlx.DB, logger *slog.Logger) storeSet {
	return storeSet{
		parks:  postgres.NewPostgresNationalParkStore(db, logger),
		trails: postgres.NewPostgresTrailStore(db, logger),
		users:  postgres.NewPostgresUserStore(db, logger),
	}
}

func memoryStores() storeSet {
	db := memory.NewDB()
	return storeSet{
		parks:  memory.NewNationalParkStore(db),
		trails: memory.NewTrailStore(db),
		users:  memory.NewUserStore(db),
	}
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the server runs on the in-memory stores.
	db *sqlx.DB

	stores storeSet

	jwtService  auth.JWTService
	userService service.UserService
	metrics     *metrics.Metrics
}

// newApplication wires services on top of an already opened backend.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB, stores storeSet) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		stores: stores,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	passwords := auth.NewBcryptVerifier(cfg.Auth.BCryptCost)
	app.userService = service.NewUserService(stores.users, passwords, app.jwtService, logger)
	app.metrics = metrics.New()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
