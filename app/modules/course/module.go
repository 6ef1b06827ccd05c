package course

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/the-tour-club/skins/app/eventbus"
	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	"github.com/the-tour-club/skins/app/modules/course/infrastructure/golfapi"
	coursedb "github.com/the-tour-club/skins/app/modules/course/infrastructure/repositories"
	courserouter "github.com/the-tour-club/skins/app/modules/course/infrastructure/router"
	"github.com/the-tour-club/skins/config"
	"github.com/the-tour-club/skins/internal/observability"
	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
	"github.com/the-tour-club/skins/internal/utils"
)

// Module represents the course module.
type Module struct {
	EventBus      eventbus.EventBus
	CourseService *courseservice.CourseService
	CourseRouter  *courserouter.CourseRouter
	logger        *slog.Logger
	metrics       coursemetrics.CourseMetrics
	config        *config.Config
	cancelFunc    context.CancelFunc
	helper        utils.Helpers
}

// NewCourseModule creates a new instance of the course module.
func NewCourseModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.TracerProvider.Tracer("course")
	metrics := coursemetrics.NewCourseMetrics(obs.Registry)

	logger.Info("course.NewCourseModule called")

	repo := coursedb.NewRepository(db)

	var remote golfapi.Provider
	if cfg.CourseProvider.BaseURL != "" {
		remote = golfapi.NewClient(golfapi.Config{
			BaseURL:           cfg.CourseProvider.BaseURL,
			APIKey:            cfg.CourseProvider.APIKey,
			Timeout:           cfg.CourseProvider.Timeout,
			CacheTTL:          cfg.CourseProvider.CacheTTL,
			RequestsPerSecond: cfg.CourseProvider.RequestsPerSecond,
			Burst:             cfg.CourseProvider.Burst,
		}, logger, metrics)
	}

	courseService := courseservice.NewCourseService(repo, remote, logger, metrics, tracer, db)

	courseRouter := courserouter.NewCourseRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)

	if err := courseRouter.Configure(ctx, courseService, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure course router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		CourseService: courseService,
		CourseRouter:  courseRouter,
		logger:        logger,
		metrics:       metrics,
		config:        cfg,
		helper:        helpers,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting course module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Course module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping course module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.logger.Info("Course module stopped")
	return nil
}
