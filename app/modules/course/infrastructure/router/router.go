package courserouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/the-tour-club/skins/app/eventbus"
	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	courseevents "github.com/the-tour-club/skins/app/modules/course/events"
	coursehandlers "github.com/the-tour-club/skins/app/modules/course/infrastructure/handlers"
	"github.com/the-tour-club/skins/config"
	"github.com/the-tour-club/skins/internal/observability/attr"
	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
	"github.com/the-tour-club/skins/internal/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// CourseRouter wires the course module's handlers onto the shared watermill
// router.
type CourseRouter struct {
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

func NewCourseRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *CourseRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &CourseRouter{
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

// Configure registers the course handlers on the shared router. Middleware
// is added once by the game router, which configures first.
func (r *CourseRouter) Configure(routerCtx context.Context, courseService courseservice.Service, courseMetrics coursemetrics.CourseMetrics) error {
	courseHandlers := coursehandlers.NewCourseHandlers(courseService, r.logger, r.tracer, r.helper, courseMetrics)

	if err := r.RegisterHandlers(routerCtx, courseHandlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers registers event handlers for every course request subject.
func (r *CourseRouter) RegisterHandlers(ctx context.Context, handlers coursehandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		courseevents.CourseSaveRequest:   handlers.HandleSaveRequest,
		courseevents.CourseDeleteRequest: handlers.HandleDeleteRequest,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("course.%s", topic)
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

func (r *CourseRouter) Close() error {
	return r.Router.Close()
}
