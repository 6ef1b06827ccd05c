package courseservice

import (
	"context"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// SaveResult carries the stored course plus any validation warnings.
// Warnings are advisory; the course is saved regardless.
type SaveResult struct {
	Course   gamedomain.Course `json:"course"`
	Warnings []string          `json:"warnings,omitempty"`
}

// Service defines the interface for the CourseService.
type Service interface {
	// GetCourse looks up a course by ID: builtin first, then custom,
	// then the remote provider if one is configured.
	GetCourse(ctx context.Context, courseID string) (gamedomain.Course, error)

	// ResolveCourse is GetCourse under the name the game module expects.
	ResolveCourse(ctx context.Context, courseID string) (gamedomain.Course, error)

	// ListCourses returns all builtin and custom courses.
	ListCourses(ctx context.Context) ([]gamedomain.Course, error)

	// SearchCourses filters by name or location, augmented with remote
	// results when a provider is configured.
	SearchCourses(ctx context.Context, term string) ([]gamedomain.Course, error)

	// Suggestions returns up to five courses for an autocomplete box. An
	// empty input yields a default mix of builtins and recent customs.
	Suggestions(ctx context.Context, input string) ([]gamedomain.Course, error)

	// SaveCustomCourse creates or updates a user-authored course. A blank
	// ID gets one generated from the name.
	SaveCustomCourse(ctx context.Context, course gamedomain.Course) (*SaveResult, error)

	// DeleteCustomCourse removes a user-authored course.
	DeleteCustomCourse(ctx context.Context, courseID string) error
}
