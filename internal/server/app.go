// Package server initializes and runs the HydroHabit tracker server.
// It selects the storage backing (PostgreSQL or in-memory fallback), wires
// services and the session controller, handles graceful shutdown, and
// starts the HTTP server for the web UI.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/logging"
	"github.com/dmitrijs2005/hydrohabit/internal/server/config"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hydrohabit/internal/server/services"
	"github.com/dmitrijs2005/hydrohabit/internal/server/session"
	"github.com/dmitrijs2005/hydrohabit/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	ctrl   *session.Controller
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, rm := openBacking(c, logger)

	us := services.NewUserService(db, rm)
	ss := services.NewSipService(db, rm)
	ctrl := session.NewController(us, ss)

	return &App{config: c, logger: logger, ctrl: ctrl}, nil
}

// openBacking connects to PostgreSQL and runs migrations. Any failure logs
// a warning and selects the process-local in-memory backing instead, so the
// server always comes up.
func openBacking(c *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager) {
	ctx := context.Background()

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err = db.PingContext(pingCtx)
	}

	if err == nil {
		pm := repomanager.NewPostgresRepositoryManager()
		if err = pm.RunMigrations(ctx, db); err == nil {
			logger.Info(ctx, "Using PostgreSQL backing")
			return db, pm
		}
	}

	if db != nil {
		_ = db.Close()
	}

	logger.Warn(ctx, "Database unavailable, falling back to in-memory storage", "error", err.Error())
	return nil, repomanager.NewMemoryRepositoryManager()
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

	s, err := web.NewServer(app.config.EndpointAddrHTTP, app.logger, app.ctrl,
		app.config.SecretKey, app.config.SessionValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
