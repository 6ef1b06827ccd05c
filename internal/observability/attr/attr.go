package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Thin wrappers over slog.Attr so call sites read the same in services and
// handlers regardless of the value's origin.

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// CorrelationIDFromMsg extracts the watermill correlation ID from message
// metadata for log lines emitted inside handlers.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	if msg == nil {
		return slog.String("correlation_id", "")
	}
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}

type correlationIDKey struct{}

// WithCorrelationID stores a correlation ID on the context so service-layer
// log lines can carry it without threading the message through.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// ExtractCorrelationID reads the correlation ID previously stored with
// WithCorrelationID; missing IDs log as an empty string.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return slog.String("correlation_id", v)
	}
	return slog.String("correlation_id", "")
}
