package courseservice

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/uptrace/bun"

	coursedomain "github.com/the-tour-club/skins/app/modules/course/domain"
	"github.com/the-tour-club/skins/app/modules/course/infrastructure/golfapi"
	coursedb "github.com/the-tour-club/skins/app/modules/course/infrastructure/repositories"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// FakeCourseRepo is an in-memory Repository. Individual methods can be
// overridden per test via the *Func fields.
type FakeCourseRepo struct {
	mu      sync.Mutex
	courses map[string]coursedb.CustomCourse
	trace   []string

	GetByIDFunc func(ctx context.Context, db bun.IDB, id string) (*coursedb.CustomCourse, error)
	ListFunc    func(ctx context.Context, db bun.IDB) ([]coursedb.CustomCourse, error)
	SearchFunc  func(ctx context.Context, db bun.IDB, term string) ([]coursedb.CustomCourse, error)
	UpsertFunc  func(ctx context.Context, db bun.IDB, course *coursedb.CustomCourse) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, id string) error
}

var _ coursedb.Repository = (*FakeCourseRepo)(nil)

func NewFakeCourseRepo() *FakeCourseRepo {
	return &FakeCourseRepo{courses: make(map[string]coursedb.CustomCourse)}
}

func (f *FakeCourseRepo) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, call)
}

func (f *FakeCourseRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeCourseRepo) GetByID(ctx context.Context, db bun.IDB, id string) (*coursedb.CustomCourse, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	course, ok := f.courses[id]
	if !ok {
		return nil, coursedb.ErrNotFound
	}
	return &course, nil
}

func (f *FakeCourseRepo) List(ctx context.Context, db bun.IDB) ([]coursedb.CustomCourse, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]coursedb.CustomCourse, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *FakeCourseRepo) Search(ctx context.Context, db bun.IDB, term string) ([]coursedb.CustomCourse, error) {
	f.record("Search")
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, db, term)
	}
	all, err := f.List(ctx, db)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var out []coursedb.CustomCourse
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) || strings.Contains(strings.ToLower(c.Location), term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeCourseRepo) Upsert(ctx context.Context, db bun.IDB, course *coursedb.CustomCourse) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, course)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.courses[course.ID] = *course
	return nil
}

func (f *FakeCourseRepo) Delete(ctx context.Context, db bun.IDB, id string) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[id]; !ok {
		return coursedb.ErrNotFound
	}
	delete(f.courses, id)
	return nil
}

// FakeRemoteProvider is an in-memory golfapi.Provider.
type FakeRemoteProvider struct {
	Courses map[string]gamedomain.Course

	GetCourseFunc     func(ctx context.Context, id string) (*gamedomain.Course, error)
	SearchCoursesFunc func(ctx context.Context, query string) ([]gamedomain.Course, error)
}

var _ golfapi.Provider = (*FakeRemoteProvider)(nil)

func (f *FakeRemoteProvider) GetCourse(ctx context.Context, id string) (*gamedomain.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	course, ok := f.Courses[id]
	if !ok {
		return nil, errors.New("remote course not found")
	}
	return &course, nil
}

func (f *FakeRemoteProvider) SearchCourses(ctx context.Context, query string) ([]gamedomain.Course, error) {
	if f.SearchCoursesFunc != nil {
		return f.SearchCoursesFunc(ctx, query)
	}
	var out []gamedomain.Course
	for _, c := range f.Courses {
		if coursedomain.Matches(c, query) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
