package courseservice

import (
	"context"
	"errors"
	"fmt"

	coursedomain "github.com/the-tour-club/skins/app/modules/course/domain"
	coursedb "github.com/the-tour-club/skins/app/modules/course/infrastructure/repositories"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	"github.com/the-tour-club/skins/internal/observability/attr"
)

// SaveCustomCourse creates or updates a user-authored course. Builtin IDs
// are rejected; a blank ID gets one generated from the name.
func (s *CourseService) SaveCustomCourse(ctx context.Context, course gamedomain.Course) (*SaveResult, error) {
	ctx, span := s.startSpan(ctx, "SaveCustomCourse", course.ID)
	defer span.End()

	if course.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCourse)
	}
	if len(course.Holes) == 0 {
		return nil, fmt.Errorf("%w: no holes", ErrInvalidCourse)
	}
	if _, ok := coursedomain.BuiltinCourse(course.ID); ok {
		return nil, ErrBuiltinCourse
	}

	if course.ID == "" {
		course.ID = coursedomain.GenerateCourseID(course.Name)
	}

	totalPar := 0
	totalDistance := 0
	for _, h := range course.Holes {
		totalPar += h.Par
		totalDistance += h.Distance
	}
	course.TotalPar = totalPar
	course.TotalDistance = totalDistance

	warnings := coursedomain.Validate(course)
	for _, w := range warnings {
		s.logger.WarnContext(ctx, "Course validation warning",
			attr.String("course_id", course.ID),
			attr.String("warning", w),
		)
	}

	record := &coursedb.CustomCourse{
		ID:       course.ID,
		Name:     course.Name,
		Location: course.Location,
		Layout:   course,
	}
	if err := s.repo.Upsert(ctx, nil, record); err != nil {
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	return &SaveResult{Course: course, Warnings: warnings}, nil
}

// DeleteCustomCourse removes a user-authored course.
func (s *CourseService) DeleteCustomCourse(ctx context.Context, courseID string) error {
	ctx, span := s.startSpan(ctx, "DeleteCustomCourse", courseID)
	defer span.End()

	if _, ok := coursedomain.BuiltinCourse(courseID); ok {
		return ErrBuiltinCourse
	}

	if err := s.repo.Delete(ctx, nil, courseID); err != nil {
		if errors.Is(err, coursedb.ErrNotFound) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
