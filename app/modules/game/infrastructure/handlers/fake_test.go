package gamehandlers

import (
	"context"

	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// ------------------------
// Fake Game Service
// ------------------------

type FakeGameService struct {
	trace []string

	CreateGameFunc      func(ctx context.Context, input gameservice.CreateGameInput) (*gamedomain.Game, error)
	GetGameFunc         func(ctx context.Context, gameID string) (*gamedomain.Game, error)
	DeleteGameFunc      func(ctx context.Context, gameID string) error
	RecordScoreFunc     func(ctx context.Context, gameID string, playerID gamedomain.PlayerID, holeNumber, strokes, putts int) (*gamedomain.Game, error)
	WinnerFunc          func(ctx context.Context, op, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error)
	MarkFunc            func(ctx context.Context, op, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)
	ToggleFunc          func(ctx context.Context, op, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error)
	ChangeCourseFunc    func(ctx context.Context, gameID, courseID string) (*gamedomain.Game, error)
	SaveScorecardFunc   func(ctx context.Context, gameID, name string) (*gameservice.StoredScorecard, error)
	ListScorecardsFunc  func(ctx context.Context) ([]gameservice.StoredScorecard, error)
	DeleteScorecardFunc func(ctx context.Context, scorecardID string) error
	ExportFunc          func(ctx context.Context) (*gameservice.ScorecardExportFile, error)
	ImportFunc          func(ctx context.Context, raw []byte) (*gameservice.ImportSummary, error)
	ExportXLSXFunc      func(ctx context.Context, gameID string) ([]byte, error)
	StandingsChartFunc  func(ctx context.Context, gameID string) ([]byte, error)
}

func NewFakeGameService() *FakeGameService {
	return &FakeGameService{
		trace: []string{},
	}
}

func (f *FakeGameService) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Service Interface Implementation ---

func (f *FakeGameService) CreateGame(ctx context.Context, input gameservice.CreateGameInput) (*gamedomain.Game, error) {
	f.record("CreateGame")
	if f.CreateGameFunc != nil {
		return f.CreateGameFunc(ctx, input)
	}
	return nil, nil
}

func (f *FakeGameService) GetGame(ctx context.Context, gameID string) (*gamedomain.Game, error) {
	f.record("GetGame")
	if f.GetGameFunc != nil {
		return f.GetGameFunc(ctx, gameID)
	}
	return nil, nil
}

func (f *FakeGameService) DeleteGame(ctx context.Context, gameID string) error {
	f.record("DeleteGame")
	if f.DeleteGameFunc != nil {
		return f.DeleteGameFunc(ctx, gameID)
	}
	return nil
}

func (f *FakeGameService) RecordScore(ctx context.Context, gameID string, playerID gamedomain.PlayerID, holeNumber, strokes, putts int) (*gamedomain.Game, error) {
	f.record("RecordScore")
	if f.RecordScoreFunc != nil {
		return f.RecordScoreFunc(ctx, gameID, playerID, holeNumber, strokes, putts)
	}
	return nil, nil
}

func (f *FakeGameService) SetClosestToPin(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error) {
	f.record("SetClosestToPin")
	if f.WinnerFunc != nil {
		return f.WinnerFunc(ctx, "SetClosestToPin", gameID, holeNumber, winner)
	}
	return nil, nil
}

func (f *FakeGameService) ClearClosestToPin(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error) {
	f.record("ClearClosestToPin")
	if f.WinnerFunc != nil {
		return f.WinnerFunc(ctx, "ClearClosestToPin", gameID, holeNumber, nil)
	}
	return nil, nil
}

func (f *FakeGameService) SetLongestDrive(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error) {
	f.record("SetLongestDrive")
	if f.WinnerFunc != nil {
		return f.WinnerFunc(ctx, "SetLongestDrive", gameID, holeNumber, winner)
	}
	return nil, nil
}

func (f *FakeGameService) ClearLongestDrive(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error) {
	f.record("ClearLongestDrive")
	if f.WinnerFunc != nil {
		return f.WinnerFunc(ctx, "ClearLongestDrive", gameID, holeNumber, nil)
	}
	return nil, nil
}

func (f *FakeGameService) SetGreenie(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetGreenie")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetGreenie", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) SetFiver(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetFiver")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetFiver", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) SetFour(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetFour")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetFour", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) SetSandyHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error) {
	f.record("SetSandyHole")
	if f.ToggleFunc != nil {
		return f.ToggleFunc(ctx, "SetSandyHole", gameID, holeNumber, enabled)
	}
	return nil, nil
}

func (f *FakeGameService) SetLostBallHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error) {
	f.record("SetLostBallHole")
	if f.ToggleFunc != nil {
		return f.ToggleFunc(ctx, "SetLostBallHole", gameID, holeNumber, enabled)
	}
	return nil, nil
}

func (f *FakeGameService) SetSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetSandy")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetSandy", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) SetDoubleSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetDoubleSandy")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetDoubleSandy", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) SetLostBall(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	f.record("SetLostBall")
	if f.MarkFunc != nil {
		return f.MarkFunc(ctx, "SetLostBall", gameID, holeNumber, playerID, marked)
	}
	return nil, nil
}

func (f *FakeGameService) ChangeCourse(ctx context.Context, gameID, courseID string) (*gamedomain.Game, error) {
	f.record("ChangeCourse")
	if f.ChangeCourseFunc != nil {
		return f.ChangeCourseFunc(ctx, gameID, courseID)
	}
	return nil, nil
}

func (f *FakeGameService) SaveScorecard(ctx context.Context, gameID, name string) (*gameservice.StoredScorecard, error) {
	f.record("SaveScorecard")
	if f.SaveScorecardFunc != nil {
		return f.SaveScorecardFunc(ctx, gameID, name)
	}
	return &gameservice.StoredScorecard{}, nil
}

func (f *FakeGameService) ListScorecards(ctx context.Context) ([]gameservice.StoredScorecard, error) {
	f.record("ListScorecards")
	if f.ListScorecardsFunc != nil {
		return f.ListScorecardsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeGameService) DeleteScorecard(ctx context.Context, scorecardID string) error {
	f.record("DeleteScorecard")
	if f.DeleteScorecardFunc != nil {
		return f.DeleteScorecardFunc(ctx, scorecardID)
	}
	return nil
}

func (f *FakeGameService) ExportScorecards(ctx context.Context) (*gameservice.ScorecardExportFile, error) {
	f.record("ExportScorecards")
	if f.ExportFunc != nil {
		return f.ExportFunc(ctx)
	}
	return nil, nil
}

func (f *FakeGameService) ImportScorecards(ctx context.Context, raw []byte) (*gameservice.ImportSummary, error) {
	f.record("ImportScorecards")
	if f.ImportFunc != nil {
		return f.ImportFunc(ctx, raw)
	}
	return nil, nil
}

func (f *FakeGameService) ExportXLSX(ctx context.Context, gameID string) ([]byte, error) {
	f.record("ExportXLSX")
	if f.ExportXLSXFunc != nil {
		return f.ExportXLSXFunc(ctx, gameID)
	}
	return nil, nil
}

func (f *FakeGameService) StandingsChart(ctx context.Context, gameID string) ([]byte, error) {
	f.record("StandingsChart")
	if f.StandingsChartFunc != nil {
		return f.StandingsChartFunc(ctx, gameID)
	}
	return nil, nil
}

// --- Accessors for assertions ---

func (f *FakeGameService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ gameservice.Service = (*FakeGameService)(nil)
