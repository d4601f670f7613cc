// Package server initializes and runs the critterkeep application server.
// It wires the Postgres repositories, the external catalog client and the
// domain services, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/catalog"
	"github.com/dmitrijs2005/critterkeep/internal/server/config"
	"github.com/dmitrijs2005/critterkeep/internal/server/httpapi"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/critterkeep/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        repomanager.RepositoryManager
	userService  *services.UserService
	catchService *services.CatchService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	cc := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogRequestTimeout)

	us := services.NewUserService(rm.Users(), cfg, logger)
	cs := services.NewCatchService(rm.Creatures(), rm.Catches(), cc, logger)

	return &App{config: cfg, logger: logger, repos: rm, userService: us, catchService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	dbPing := func(ctx context.Context) error {
		return app.repos.Conn().PingContext(ctx)
	}

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.catchService, app.config.SecretKey, dbPing)

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

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
