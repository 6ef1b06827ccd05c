package courseservice

import "errors"

var (
	// ErrCourseNotFound is returned when no builtin, custom, or remote
	// course matches the requested ID.
	ErrCourseNotFound = errors.New("course not found")

	// ErrBuiltinCourse is returned when a write targets a stock course ID.
	ErrBuiltinCourse = errors.New("builtin courses cannot be modified")

	// ErrInvalidCourse is returned when a custom course fails validation
	// badly enough to be unusable.
	ErrInvalidCourse = errors.New("invalid course")
)
