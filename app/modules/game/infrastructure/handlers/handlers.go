package gamehandlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	"github.com/the-tour-club/skins/internal/observability/attr"
	gamemetrics "github.com/the-tour-club/skins/internal/observability/metrics/game"
	"github.com/the-tour-club/skins/internal/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// Handlers defines the message handlers the game router registers.
type Handlers interface {
	HandleCreateGameRequest(msg *message.Message) ([]*message.Message, error)
	HandleScoreUpdateRequest(msg *message.Message) ([]*message.Message, error)
	HandleClosestSetRequest(msg *message.Message) ([]*message.Message, error)
	HandleLongestSetRequest(msg *message.Message) ([]*message.Message, error)
	HandleMarkSetRequest(msg *message.Message) ([]*message.Message, error)
	HandleHoleToggleRequest(msg *message.Message) ([]*message.Message, error)
	HandleCourseChangeRequest(msg *message.Message) ([]*message.Message, error)
	HandleArchiveRequest(msg *message.Message) ([]*message.Message, error)
}

// GameHandlers handles game-related events.
type GameHandlers struct {
	gameService    gameservice.Service
	logger         *slog.Logger
	tracer         trace.Tracer
	metrics        gamemetrics.GameMetrics
	helpers        utils.Helpers
	handlerWrapper func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc
}

// NewGameHandlers creates a new GameHandlers.
func NewGameHandlers(
	gameService gameservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics gamemetrics.GameMetrics,
) Handlers {
	return &GameHandlers{
		gameService: gameService,
		logger:      logger,
		tracer:      tracer,
		helpers:     helpers,
		metrics:     metrics,
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
	metrics gamemetrics.GameMetrics,
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
