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

// GetCourse looks up a course by ID. Builtins shadow custom courses, which
// shadow the remote provider.
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (gamedomain.Course, error) {
	ctx, span := s.startSpan(ctx, "GetCourse", courseID)
	defer span.End()

	if course, ok := coursedomain.BuiltinCourse(courseID); ok {
		if s.metrics != nil {
			s.metrics.RecordLookup("builtin")
		}
		return course, nil
	}

	custom, err := s.repo.GetByID(ctx, nil, courseID)
	if err == nil {
		if s.metrics != nil {
			s.metrics.RecordLookup("custom")
		}
		return custom.Layout, nil
	}
	if !errors.Is(err, coursedb.ErrNotFound) {
		return gamedomain.Course{}, fmt.Errorf("failed to look up course: %w", err)
	}

	if s.remote != nil {
		remote, err := s.remote.GetCourse(ctx, courseID)
		if err == nil {
			if s.metrics != nil {
				s.metrics.RecordLookup("remote")
			}
			return *remote, nil
		}
		s.logger.WarnContext(ctx, "Remote course lookup failed",
			attr.String("course_id", courseID),
			attr.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordRemoteFailure()
		}
	}

	return gamedomain.Course{}, ErrCourseNotFound
}

// ResolveCourse satisfies the resolver interface the game module depends on.
func (s *CourseService) ResolveCourse(ctx context.Context, courseID string) (gamedomain.Course, error) {
	return s.GetCourse(ctx, courseID)
}

// ListCourses returns every builtin and custom course, builtins first.
func (s *CourseService) ListCourses(ctx context.Context) ([]gamedomain.Course, error) {
	ctx, span := s.startSpan(ctx, "ListCourses", "")
	defer span.End()

	courses := coursedomain.BuiltinCourses()

	customs, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom courses: %w", err)
	}
	for _, c := range customs {
		courses = append(courses, c.Layout)
	}
	return courses, nil
}

// SearchCourses filters builtins and custom courses by name or location,
// then appends remote matches. A remote failure degrades to local results.
func (s *CourseService) SearchCourses(ctx context.Context, term string) ([]gamedomain.Course, error) {
	ctx, span := s.startSpan(ctx, "SearchCourses", term)
	defer span.End()

	var courses []gamedomain.Course
	seen := map[string]bool{}

	for _, c := range coursedomain.BuiltinCourses() {
		if coursedomain.Matches(c, term) {
			courses = append(courses, c)
			seen[c.ID] = true
		}
	}

	customs, err := s.repo.Search(ctx, nil, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search custom courses: %w", err)
	}
	for _, c := range customs {
		if !seen[c.Layout.ID] {
			courses = append(courses, c.Layout)
			seen[c.Layout.ID] = true
		}
	}

	if s.remote != nil && term != "" {
		remote, err := s.remote.SearchCourses(ctx, term)
		if err != nil {
			s.logger.WarnContext(ctx, "Remote course search failed",
				attr.String("term", term),
				attr.Error(err),
			)
			if s.metrics != nil {
				s.metrics.RecordRemoteFailure()
			}
		} else {
			for _, c := range remote {
				if !seen[c.ID] {
					courses = append(courses, c)
					seen[c.ID] = true
				}
			}
		}
	}

	return courses, nil
}

const maxSuggestions = 5

// Suggestions returns up to five courses for an autocomplete box. An empty
// input yields the first builtins plus the most recent custom courses; a
// non-empty input filters locally and always offers the blank custom
// template as a fallback.
func (s *CourseService) Suggestions(ctx context.Context, input string) ([]gamedomain.Course, error) {
	ctx, span := s.startSpan(ctx, "Suggestions", input)
	defer span.End()

	customs, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom courses: %w", err)
	}

	if input == "" {
		suggestions := coursedomain.BuiltinCourses()
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}
		for i := 0; i < len(customs) && i < 2; i++ {
			suggestions = append(suggestions, customs[i].Layout)
		}
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}
		return suggestions, nil
	}

	var suggestions []gamedomain.Course
	hasTemplate := false
	for _, c := range coursedomain.BuiltinCourses() {
		if coursedomain.Matches(c, input) {
			suggestions = append(suggestions, c)
		}
	}
	for _, c := range customs {
		if coursedomain.Matches(c.Layout, input) {
			suggestions = append(suggestions, c.Layout)
			if c.Layout.ID == "custom-course" {
				hasTemplate = true
			}
		}
	}
	if !hasTemplate {
		suggestions = append(suggestions, coursedomain.DefaultCustomCourse())
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}
