package gamerouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/the-tour-club/skins/app/eventbus"
	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	gamehandlers "github.com/the-tour-club/skins/app/modules/game/infrastructure/handlers"
	"github.com/the-tour-club/skins/config"
	"github.com/the-tour-club/skins/internal/observability/attr"
	gamemetrics "github.com/the-tour-club/skins/internal/observability/metrics/game"
	"github.com/the-tour-club/skins/internal/utils"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// GameRouter wires the game module's handlers onto the shared watermill
// router.
type GameRouter struct {
	logger             *slog.Logger
	Router             *message.Router
	subscriber         eventbus.EventBus
	publisher          eventbus.EventBus
	config             *config.Config
	helper             utils.Helpers
	tracer             trace.Tracer
	metricsBuilder     *metrics.PrometheusMetricsBuilder
	prometheusRegistry *prometheus.Registry
	metricsEnabled     bool
}

func NewGameRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *GameRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &GameRouter{
		logger:             logger,
		Router:             router,
		subscriber:         subscriber,
		publisher:          publisher,
		config:             config,
		helper:             helper,
		tracer:             tracer,
		metricsBuilder:     metricsBuilder,
		prometheusRegistry: prometheusRegistry,
		metricsEnabled:     prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure sets up the router using the provided context and game service.
// It registers handlers and adds middleware to the router held by the GameRouter.
func (r *GameRouter) Configure(routerCtx context.Context, gameService gameservice.Service, gameMetrics gamemetrics.GameMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	} else {
		r.logger.Info("Skipping Prometheus router metrics middleware - either in test environment or metrics not configured")
	}

	gameHandlers := gamehandlers.NewGameHandlers(gameService, r.logger, r.tracer, r.helper, gameMetrics)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	if err := r.RegisterHandlers(routerCtx, gameHandlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers registers event handlers for every game request subject.
func (r *GameRouter) RegisterHandlers(ctx context.Context, handlers gamehandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		gameevents.GameCreateRequest:       handlers.HandleCreateGameRequest,
		gameevents.GameScoreUpdateRequest:  handlers.HandleScoreUpdateRequest,
		gameevents.GameClosestSetRequest:   handlers.HandleClosestSetRequest,
		gameevents.GameLongestSetRequest:   handlers.HandleLongestSetRequest,
		gameevents.GameMarkSetRequest:      handlers.HandleMarkSetRequest,
		gameevents.GameHoleToggleRequest:   handlers.HandleHoleToggleRequest,
		gameevents.GameCourseChangeRequest: handlers.HandleCourseChangeRequest,
		gameevents.GameArchiveRequest:      handlers.HandleArchiveRequest,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("game.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message", attr.String("message_id", msg.UUID), attr.Any("error", err))
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get(utils.TopicMetadataKey)
					if publishTopic == "" {
						r.logger.Error("handler result message missing topic - MESSAGE DROPPED",
							attr.String("handler", handlerName),
							attr.String("msg_uuid", m.UUID),
							attr.String("correlation_id", m.Metadata.Get(middleware.CorrelationIDMetadataKey)),
						)
						continue
					}

					r.logger.InfoContext(ctx, "publishing message",
						attr.String("topic", publishTopic),
						attr.String("handler", handlerName),
						attr.String("correlation_id", m.Metadata.Get(middleware.CorrelationIDMetadataKey)),
					)

					if err := r.publisher.Publish(publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *GameRouter) Close() error {
	return r.Router.Close()
}
