package coursehandlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	"github.com/the-tour-club/skins/internal/observability/attr"
	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
	"github.com/the-tour-club/skins/internal/utils"
)

// Handlers defines the message handlers the course router registers.
type Handlers interface {
	HandleSaveRequest(msg *message.Message) ([]*message.Message, error)
	HandleDeleteRequest(msg *message.Message) ([]*message.Message, error)
}

// CourseHandlers handles course-related events.
type CourseHandlers struct {
	courseService  courseservice.Service
	logger         *slog.Logger
	tracer         trace.Tracer
	metrics        coursemetrics.CourseMetrics
	helpers        utils.Helpers
	handlerWrapper func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc
}

// NewCourseHandlers creates a new CourseHandlers.
func NewCourseHandlers(
	courseService courseservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics coursemetrics.CourseMetrics,
) Handlers {
	return &CourseHandlers{
		courseService: courseService,
		logger:        logger,
		tracer:        tracer,
		helpers:       helpers,
		metrics:       metrics,
		handlerWrapper: func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc {
			return handlerWrapper(handlerName, unmarshalTo, handlerFunc, logger, metrics, tracer, helpers)
		},
	}
}

// handlerWrapper is a standalone function that handles common tracing, logging, and metrics for handlers.
func handlerWrapper(
	handlerName string,
	unmarshalTo interface{},
	handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error),
	logger *slog.Logger,
	metrics coursemetrics.CourseMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()
		var span trace.Span
		if tracer != nil {
			ctx, span = tracer.Start(ctx, handlerName)
			defer span.End()
		}

		metrics.RecordHandlerAttempt(handlerName)

		startTime := time.Now()
		defer func() {
			metrics.RecordHandlerDuration(handlerName, time.Since(startTime).Seconds())
		}()

		logger.Info(handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		payloadInstance := unmarshalTo
		if payloadInstance != nil {
			if err := helpers.UnmarshalPayload(msg, payloadInstance); err != nil {
				logger.Error("Failed to unmarshal payload",
					attr.CorrelationIDFromMsg(msg),
					attr.Error(err),
				)
				metrics.RecordHandlerFailure(handlerName)
				return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
			}
		}

		result, err := handlerFunc(ctx, msg, payloadInstance)
		if err != nil {
			logger.Error("Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(handlerName)
			return nil, err
		}

		logger.Info(handlerName+" completed successfully", attr.CorrelationIDFromMsg(msg))
		metrics.RecordHandlerSuccess(handlerName)
		return result, nil
	}
}
