package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/the-tour-club/skins/api"
	"github.com/the-tour-club/skins/app/eventbus"
	"github.com/the-tour-club/skins/app/modules/course"
	"github.com/the-tour-club/skins/app/modules/game"
	"github.com/the-tour-club/skins/config"
	"github.com/the-tour-club/skins/internal/db/bundb"
	"github.com/the-tour-club/skins/internal/observability"
	"github.com/the-tour-club/skins/internal/utils"
)

// App bundles every long-lived component of the backend.
type App struct {
	Config       *config.Config
	Observability *observability.Observability
	DB           *bun.DB
	EventBus     eventbus.EventBus
	Router       *message.Router
	GameModule   *game.Module
	CourseModule *course.Module

	httpServer *http.Server
	logger     *slog.Logger
}

// NewApp wires the database, event bus, modules, and HTTP API together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(config.ToObsConfig(cfg))
	logger := obs.Logger

	db, err := bundb.NewBunDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	if err := eventbus.InitializeStreams(ctx, bus); err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to initialize streams: %w", err)
	}

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	helpers := utils.NewHelpers()

	courseModule, err := course.NewCourseModule(ctx, cfg, *obs, db, bus, watermillRouter, helpers)
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create course module: %w", err)
	}

	gameModule, err := game.NewGameModule(ctx, cfg, *obs, db, courseModule.CourseService, bus, watermillRouter, helpers)
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create game module: %w", err)
	}

	apiHandler := api.NewRouter(cfg, logger, gameModule.GameService, courseModule.CourseService)
	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      apiHandler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
		Router:        watermillRouter,
		GameModule:    gameModule,
		CourseModule:  courseModule,
		httpServer:    httpServer,
		logger:        logger,
	}, nil
}

// Run starts the watermill router, the modules, and the HTTP API, then
// blocks until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.Observability.ServeMetrics(ctx, a.Config.Observability.MetricsAddress)

	routerErr := make(chan error, 1)
	go func() {
		routerErr <- a.Router.Run(ctx)
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go a.GameModule.Run(ctx, &wg)
	go a.CourseModule.Run(ctx, &wg)

	httpErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP API listening", slog.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			httpErr <- err
			return
		}
		httpErr <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-routerErr:
		if err != nil {
			return fmt.Errorf("watermill router stopped: %w", err)
		}
	case err := <-httpErr:
		if err != nil {
			return fmt.Errorf("http server stopped: %w", err)
		}
	}

	wg.Wait()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close(ctx context.Context) error {
	var firstErr error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		firstErr = err
	}
	if err := a.GameModule.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.CourseModule.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.Router.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.EventBus.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.DB.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	a.logger.Info("Application shut down")
	return firstErr
}
