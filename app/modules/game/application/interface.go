package gameservice

import (
	"context"
	"time"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// CreateGameInput carries everything needed to start a game.
type CreateGameInput struct {
	GameID    string
	EventName string
	Date      string
	CourseID  string
	Players   []gamedomain.PlayerSetup
}

// StoredScorecard is an archived game snapshot with its bookkeeping fields.
type StoredScorecard struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Data      gamedomain.Game `json:"data"`
}

// ScorecardExportFile is the portable archive format.
type ScorecardExportFile struct {
	Schema     string            `json:"schema"`
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Scorecards []StoredScorecard `json:"scorecards"`
}

// ImportSummary reports the outcome of a scorecard import.
type ImportSummary struct {
	AddedCount int      `json:"addedCount"`
	Merged     int      `json:"merged"`
	Warnings   []string `json:"warnings,omitempty"`
}

// CourseResolver looks up a course definition for game creation and course
// changes. The course module provides the implementation.
type CourseResolver interface {
	ResolveCourse(ctx context.Context, courseID string) (gamedomain.Course, error)
}

// Service defines the interface for the GameService.
type Service interface {
	// CreateGame starts a new game on the given course.
	CreateGame(ctx context.Context, input CreateGameInput) (*gamedomain.Game, error)

	// GetGame returns the current snapshot of a game.
	GetGame(ctx context.Context, gameID string) (*gamedomain.Game, error)

	// DeleteGame removes a game.
	DeleteGame(ctx context.Context, gameID string) error

	// RecordScore overwrites one player's strokes and putts on one hole.
	RecordScore(ctx context.Context, gameID string, playerID gamedomain.PlayerID, holeNumber, strokes, putts int) (*gamedomain.Game, error)

	// SetClosestToPin adjudicates a par-3. A nil winner records "no winner".
	SetClosestToPin(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error)

	// ClearClosestToPin retracts a CTP decision, reopening the hole.
	ClearClosestToPin(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error)

	// SetLongestDrive adjudicates a par-5, symmetric to SetClosestToPin.
	SetLongestDrive(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error)

	// ClearLongestDrive retracts an LD decision.
	ClearLongestDrive(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error)

	// SetGreenie sets a greenie mark on a CTP-eligible par-3.
	SetGreenie(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// SetFiver sets a fiver mark on a par-5.
	SetFiver(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// SetFour sets a four mark on the side's designated par-4.
	SetFour(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// SetSandyHole sets the hole-level sandy toggle.
	SetSandyHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error)

	// SetLostBallHole sets the hole-level lost-ball toggle.
	SetLostBallHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error)

	// SetSandy sets a player's sandy mark; requires the hole toggle.
	SetSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// SetDoubleSandy sets a player's double-sandy mark; requires the sandy.
	SetDoubleSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// SetLostBall sets a player's lost-ball mark; requires the hole toggle.
	SetLostBall(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error)

	// ChangeCourse swaps the game to a different course, resetting scores
	// and side games.
	ChangeCourse(ctx context.Context, gameID string, courseID string) (*gamedomain.Game, error)

	// SaveScorecard archives the game's current snapshot.
	SaveScorecard(ctx context.Context, gameID, name string) (*StoredScorecard, error)

	// ListScorecards returns all archived scorecards, newest first.
	ListScorecards(ctx context.Context) ([]StoredScorecard, error)

	// DeleteScorecard removes an archived scorecard.
	DeleteScorecard(ctx context.Context, scorecardID string) error

	// ExportScorecards builds the portable archive file.
	ExportScorecards(ctx context.Context) (*ScorecardExportFile, error)

	// ImportScorecards merges a previously exported archive, newest wins.
	ImportScorecards(ctx context.Context, raw []byte) (*ImportSummary, error)

	// ExportXLSX renders a game's scorecard as a spreadsheet.
	ExportXLSX(ctx context.Context, gameID string) ([]byte, error)

	// StandingsChart renders the current skins standings as a PNG.
	StandingsChart(ctx context.Context, gameID string) ([]byte, error)
}
