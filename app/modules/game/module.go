package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/the-tour-club/skins/app/eventbus"
	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	gamerouter "github.com/the-tour-club/skins/app/modules/game/infrastructure/router"
	"github.com/the-tour-club/skins/config"
	"github.com/the-tour-club/skins/internal/observability"
	gamemetrics "github.com/the-tour-club/skins/internal/observability/metrics/game"
	"github.com/the-tour-club/skins/internal/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Module represents the game module.
type Module struct {
	EventBus    eventbus.EventBus
	GameService gameservice.Service
	GameRouter  *gamerouter.GameRouter
	logger      *slog.Logger
	metrics     gamemetrics.GameMetrics
	config      *config.Config
	cancelFunc  context.CancelFunc
	helper      utils.Helpers
}

// NewGameModule creates a new instance of the game module.
func NewGameModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	courses gameservice.CourseResolver,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.TracerProvider.Tracer("game")
	metrics := gamemetrics.NewGameMetrics(obs.Registry)

	logger.Info("game.NewGameModule called")

	repo := gamedb.NewRepository(db)
	gameService := gameservice.NewGameService(repo, courses, logger, metrics, tracer, db)

	gameRouter := gamerouter.NewGameRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)

	if err := gameRouter.Configure(ctx, gameService, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure game router: %w", err)
	}

	return &Module{
		EventBus:    eventBus,
		GameService: gameService,
		GameRouter:  gameRouter,
		logger:      logger,
		metrics:     metrics,
		config:      cfg,
		helper:      helpers,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting game module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Game module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping game module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.logger.Info("Game module stopped")
	return nil
}
