package gameevents

import gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"

// Stream names
const (
	GameStreamName = "game"
)

// Request subjects consumed by the game module.
const (
	GameCreateRequest       = "game.create.request"
	GameScoreUpdateRequest  = "game.score.update.request"
	GameClosestSetRequest   = "game.closest.set.request"
	GameLongestSetRequest   = "game.longest.set.request"
	GameMarkSetRequest      = "game.mark.set.request"
	GameHoleToggleRequest   = "game.holetoggle.set.request"
	GameCourseChangeRequest = "game.course.change.request"
	GameArchiveRequest      = "game.archive.request"
)

// Result subjects published by the game module.
const (
	GameCreated      = "game.created"
	GameCreateFailed = "game.create.failed"
	GameUpdated      = "game.updated"
	GameUpdateFailed = "game.update.failed"
	GameArchived     = "game.archived"
	GameArchiveFail  = "game.archive.failed"
)

// MarkKind selects which per-player mark map a GameMarkSetRequest targets.
type MarkKind string

const (
	MarkGreenie     MarkKind = "greenie"
	MarkFiver       MarkKind = "fiver"
	MarkFour        MarkKind = "four"
	MarkSandy       MarkKind = "sandy"
	MarkDoubleSandy MarkKind = "doubleSandy"
	MarkLostBall    MarkKind = "lostBall"
)

// ToggleKind selects which hole-level toggle a GameHoleToggleRequest targets.
type ToggleKind string

const (
	ToggleSandyHole    ToggleKind = "sandyHole"
	ToggleLostBallHole ToggleKind = "lostBallHole"
)

// GameCreateRequestPayload starts a new game.
type GameCreateRequestPayload struct {
	GameID    string                   `json:"game_id"`
	EventName string                   `json:"event_name,omitempty"`
	Date      string                   `json:"date"`
	CourseID  string                   `json:"course_id"`
	Players   []gamedomain.PlayerSetup `json:"players"`
}

// GameScoreUpdatePayload overwrites one player's strokes and putts on a hole.
type GameScoreUpdatePayload struct {
	GameID     string              `json:"game_id"`
	PlayerID   gamedomain.PlayerID `json:"player_id"`
	HoleNumber int                 `json:"hole_number"`
	Strokes    int                 `json:"strokes"`
	Putts      int                 `json:"putts"`
}

// GameWinnerSetPayload adjudicates a CTP or LD hole. A nil Winner records an
// explicit "no qualifying winner"; Clear retracts the decision entirely.
type GameWinnerSetPayload struct {
	GameID     string               `json:"game_id"`
	HoleNumber int                  `json:"hole_number"`
	Winner     *gamedomain.PlayerID `json:"winner"`
	Clear      bool                 `json:"clear,omitempty"`
}

// GameMarkSetPayload sets or clears one per-player mark.
type GameMarkSetPayload struct {
	GameID     string              `json:"game_id"`
	Kind       MarkKind            `json:"kind"`
	HoleNumber int                 `json:"hole_number"`
	PlayerID   gamedomain.PlayerID `json:"player_id"`
	Marked     bool                `json:"marked"`
}

// GameHoleTogglePayload sets a hole-level sandy or lost-ball toggle.
type GameHoleTogglePayload struct {
	GameID     string     `json:"game_id"`
	Kind       ToggleKind `json:"kind"`
	HoleNumber int        `json:"hole_number"`
	Enabled    bool       `json:"enabled"`
}

// GameCourseChangePayload swaps the game onto a different course, resetting
// all scores and side-game marks.
type GameCourseChangePayload struct {
	GameID   string `json:"game_id"`
	CourseID string `json:"course_id"`
}

// GameArchivePayload archives the game's current snapshot as a scorecard.
type GameArchivePayload struct {
	GameID string `json:"game_id"`
	Name   string `json:"name,omitempty"`
}

// GameResultPayload is the common result shape: the full recomputed snapshot
// on success, an error string on failure.
type GameResultPayload struct {
	GameID  string           `json:"game_id"`
	Success bool             `json:"success"`
	Game    *gamedomain.Game `json:"game,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// GameArchivedPayload reports a completed archive operation.
type GameArchivedPayload struct {
	GameID      string `json:"game_id"`
	ScorecardID string `json:"scorecard_id,omitempty"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}
