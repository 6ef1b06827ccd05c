package courseservice

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/the-tour-club/skins/app/modules/course/infrastructure/golfapi"
	coursedb "github.com/the-tour-club/skins/app/modules/course/infrastructure/repositories"
	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
)

// CourseService implements the Service interface.
type CourseService struct {
	repo    coursedb.Repository
	remote  golfapi.Provider
	logger  *slog.Logger
	metrics coursemetrics.CourseMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

var _ Service = (*CourseService)(nil)
var _ gameservice.CourseResolver = (*CourseService)(nil)

// NewCourseService creates a new CourseService. remote may be nil, in which
// case lookups stop at the custom-course table.
func NewCourseService(
	repo coursedb.Repository,
	remote golfapi.Provider,
	logger *slog.Logger,
	metrics coursemetrics.CourseMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CourseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseService{
		repo:    repo,
		remote:  remote,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

func (s *CourseService) startSpan(ctx context.Context, operationName, courseID string) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("course_id", courseID),
	))
}
