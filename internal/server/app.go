// Package server initializes and runs the catalog application: it loads the
// dataset, prepares the database (migrations, catalog mirror, seed
// accounts), and starts the HTTP server. Every bootstrap step is fail-fast;
// the server never starts over a half-finished bootstrap.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"pokedex/internal/logging"
	"pokedex/internal/server/catalog"
	"pokedex/internal/server/config"
	"pokedex/internal/server/repositories/repomanager"
	"pokedex/internal/server/services"
	"pokedex/internal/server/sessions"
	"pokedex/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *web.Server
}

// NewApp runs the ordered startup sequence: dataset load, database open,
// migrations, catalog sync, account seeding, HTTP server construction. Any
// failure aborts with an error; there is no degraded mode.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("database DSN is required")
	}

	dataset, err := catalog.Load(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("dataset load error: %w", err)
	}
	logger.Info(ctx, "dataset loaded", "path", cfg.DatasetPath, "items", len(dataset))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}
	logger.Info(ctx, "Connected to database")

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	ss := services.NewSyncService(db, rm, logger)
	if err := ss.SyncCatalog(ctx, dataset); err != nil {
		return nil, fmt.Errorf("catalog sync error: %w", err)
	}

	us := services.NewUserService(db, rm, logger, cfg)
	if err := us.SeedAccounts(ctx); err != nil {
		return nil, fmt.Errorf("account seeding error: %w", err)
	}

	ms := services.NewMediaService(cfg, logger)
	sessionStore := sessions.NewStore(cfg.SessionTTL)

	srv, err := web.NewServer(cfg, logger, dataset, us, ms, sessionStore)
	if err != nil {
		return nil, fmt.Errorf("server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "error closing database", "error", err.Error())
	}
}
