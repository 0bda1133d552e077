// Package server wires the recipeshare services together and runs them:
// the entity store, the optional sample-data bootstrap, the JSON API and
// the gRPC health endpoint, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/dmitrijs2005/recipeshare/internal/server/httpapi"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeshare/internal/server/seed"
	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/recipeshare/internal/server/grpc"
)

// logOutput receives the JSON log stream.
var logOutput io.Writer = os.Stdout

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	router *gin.Engine
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	h := httpapi.NewHandler(httpapi.Services{
		Users:       services.NewUserService(repos, c),
		Recipes:     services.NewRecipeService(repos),
		Ingredients: services.NewIngredientService(repos),
		Board:       services.NewBoardService(repos),
		Images:      services.NewImageService(c),
		StorageKind: repos.Kind(),
	}, logger)

	return &App{
		config: c,
		logger: logger,
		repos:  repos,
		router: httpapi.NewRouter(h, logger),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// seedSampleData runs the bootstrapper. Failures are logged and do not
// prevent startup.
func (app *App) seedSampleData(ctx context.Context) {
	if !app.config.SeedSampleData {
		return
	}
	if _, err := seed.Run(ctx, app.repos, app.logger); err != nil {
		app.logger.Warn(ctx, "sample data bootstrap failed", "error", err)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.HTTPAddr, app.logger, app.router)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.GRPCHealthAddr, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails,
// then closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.repos.Kind())

	app.initSignalHandler(ctx, cancelFunc)
	app.seedSampleData(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.GRPCHealthAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "Stopping app...")
	if err := app.repos.Close(); err != nil {
		return fmt.Errorf("store close error: %w", err)
	}
	return nil
}
