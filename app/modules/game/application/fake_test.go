package gameservice

import (
	"context"
	"errors"
	"sort"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Game Repo
// ------------------------

// FakeGameRepo is an in-memory Repository. Individual calls can be overridden
// through the *Func fields; by default reads and writes hit the maps.
type FakeGameRepo struct {
	trace []string

	games      map[string]gamedb.GameRecord
	scorecards map[string]gamedb.Scorecard

	GetByIDFunc         func(ctx context.Context, db bun.IDB, gameID string) (*gamedb.GameRecord, error)
	UpsertFunc          func(ctx context.Context, db bun.IDB, record *gamedb.GameRecord) error
	DeleteFunc          func(ctx context.Context, db bun.IDB, gameID string) error
	ListScorecardsFunc  func(ctx context.Context, db bun.IDB) ([]gamedb.Scorecard, error)
	GetScorecardFunc    func(ctx context.Context, db bun.IDB, scorecardID string) (*gamedb.Scorecard, error)
	UpsertScorecardFunc func(ctx context.Context, db bun.IDB, scorecard *gamedb.Scorecard) error
	DeleteScorecardFunc func(ctx context.Context, db bun.IDB, scorecardID string) error
}

func NewFakeGameRepo() *FakeGameRepo {
	return &FakeGameRepo{
		trace:      []string{},
		games:      map[string]gamedb.GameRecord{},
		scorecards: map[string]gamedb.Scorecard{},
	}
}

func (f *FakeGameRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeGameRepo) GetByID(ctx context.Context, db bun.IDB, gameID string) (*gamedb.GameRecord, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, gameID)
	}
	record, ok := f.games[gameID]
	if !ok {
		return nil, gamedb.ErrNotFound
	}
	return &record, nil
}

func (f *FakeGameRepo) Upsert(ctx context.Context, db bun.IDB, record *gamedb.GameRecord) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, record)
	}
	f.games[record.ID] = *record
	return nil
}

func (f *FakeGameRepo) Delete(ctx context.Context, db bun.IDB, gameID string) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, gameID)
	}
	if _, ok := f.games[gameID]; !ok {
		return gamedb.ErrNotFound
	}
	delete(f.games, gameID)
	return nil
}

func (f *FakeGameRepo) ListScorecards(ctx context.Context, db bun.IDB) ([]gamedb.Scorecard, error) {
	f.record("ListScorecards")
	if f.ListScorecardsFunc != nil {
		return f.ListScorecardsFunc(ctx, db)
	}
	out := make([]gamedb.Scorecard, 0, len(f.scorecards))
	for _, sc := range f.scorecards {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (f *FakeGameRepo) GetScorecard(ctx context.Context, db bun.IDB, scorecardID string) (*gamedb.Scorecard, error) {
	f.record("GetScorecard")
	if f.GetScorecardFunc != nil {
		return f.GetScorecardFunc(ctx, db, scorecardID)
	}
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return nil, gamedb.ErrScorecardNotFound
	}
	return &sc, nil
}

func (f *FakeGameRepo) UpsertScorecard(ctx context.Context, db bun.IDB, scorecard *gamedb.Scorecard) error {
	f.record("UpsertScorecard")
	if f.UpsertScorecardFunc != nil {
		return f.UpsertScorecardFunc(ctx, db, scorecard)
	}
	f.scorecards[scorecard.ID] = *scorecard
	return nil
}

func (f *FakeGameRepo) DeleteScorecard(ctx context.Context, db bun.IDB, scorecardID string) error {
	f.record("DeleteScorecard")
	if f.DeleteScorecardFunc != nil {
		return f.DeleteScorecardFunc(ctx, db, scorecardID)
	}
	if _, ok := f.scorecards[scorecardID]; !ok {
		return gamedb.ErrScorecardNotFound
	}
	delete(f.scorecards, scorecardID)
	return nil
}

// --- Accessors for assertions ---

func (f *FakeGameRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ gamedb.Repository = (*FakeGameRepo)(nil)

// ------------------------
// Fake Course Resolver
// ------------------------

type FakeCourseResolver struct {
	Courses map[string]gamedomain.Course

	ResolveCourseFunc func(ctx context.Context, courseID string) (gamedomain.Course, error)
}

func (f *FakeCourseResolver) ResolveCourse(ctx context.Context, courseID string) (gamedomain.Course, error) {
	if f.ResolveCourseFunc != nil {
		return f.ResolveCourseFunc(ctx, courseID)
	}
	course, ok := f.Courses[courseID]
	if !ok {
		return gamedomain.Course{}, errors.New("course not found")
	}
	return course, nil
}

var _ CourseResolver = (*FakeCourseResolver)(nil)
