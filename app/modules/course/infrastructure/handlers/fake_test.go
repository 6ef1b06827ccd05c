package coursehandlers

import (
	"context"

	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// ------------------------
// Fake Course Service
// ------------------------

type FakeCourseService struct {
	trace []string

	GetCourseFunc          func(ctx context.Context, courseID string) (gamedomain.Course, error)
	ListCoursesFunc        func(ctx context.Context) ([]gamedomain.Course, error)
	SearchCoursesFunc      func(ctx context.Context, term string) ([]gamedomain.Course, error)
	SuggestionsFunc        func(ctx context.Context, input string) ([]gamedomain.Course, error)
	SaveCustomCourseFunc   func(ctx context.Context, course gamedomain.Course) (*courseservice.SaveResult, error)
	DeleteCustomCourseFunc func(ctx context.Context, courseID string) error
}

func NewFakeCourseService() *FakeCourseService {
	return &FakeCourseService{
		trace: []string{},
	}
}

func (f *FakeCourseService) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Service Interface Implementation ---

func (f *FakeCourseService) GetCourse(ctx context.Context, courseID string) (gamedomain.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, courseID)
	}
	return gamedomain.Course{}, nil
}

func (f *FakeCourseService) ResolveCourse(ctx context.Context, courseID string) (gamedomain.Course, error) {
	f.record("ResolveCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, courseID)
	}
	return gamedomain.Course{}, nil
}

func (f *FakeCourseService) ListCourses(ctx context.Context) ([]gamedomain.Course, error) {
	f.record("ListCourses")
	if f.ListCoursesFunc != nil {
		return f.ListCoursesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeCourseService) SearchCourses(ctx context.Context, term string) ([]gamedomain.Course, error) {
	f.record("SearchCourses")
	if f.SearchCoursesFunc != nil {
		return f.SearchCoursesFunc(ctx, term)
	}
	return nil, nil
}

func (f *FakeCourseService) Suggestions(ctx context.Context, input string) ([]gamedomain.Course, error) {
	f.record("Suggestions")
	if f.SuggestionsFunc != nil {
		return f.SuggestionsFunc(ctx, input)
	}
	return nil, nil
}

func (f *FakeCourseService) SaveCustomCourse(ctx context.Context, course gamedomain.Course) (*courseservice.SaveResult, error) {
	f.record("SaveCustomCourse")
	if f.SaveCustomCourseFunc != nil {
		return f.SaveCustomCourseFunc(ctx, course)
	}
	return &courseservice.SaveResult{Course: course}, nil
}

func (f *FakeCourseService) DeleteCustomCourse(ctx context.Context, courseID string) error {
	f.record("DeleteCustomCourse")
	if f.DeleteCustomCourseFunc != nil {
		return f.DeleteCustomCourseFunc(ctx, courseID)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeCourseService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ courseservice.Service = (*FakeCourseService)(nil)
