package gameservice

import "errors"

// Domain errors for the game service.
// These represent business rejections that handlers should treat as normal
// outcomes (publish failure event, ack message) rather than retrying.
var (
	// ErrGameNotFound indicates no game exists with the requested ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrScorecardNotFound indicates no archived scorecard exists with the requested ID.
	ErrScorecardNotFound = errors.New("scorecard not found")

	// ErrUnknownPlayer indicates the target player is not part of the game.
	ErrUnknownPlayer = errors.New("player is not part of the game")

	// ErrUnknownHole indicates the hole number is not on the game's course.
	ErrUnknownHole = errors.New("hole is not on the course")

	// ErrIneligibleHole indicates the hole is outside the side game's eligible set.
	ErrIneligibleHole = errors.New("hole is not eligible for this side game")

	// ErrSideClosed indicates an earlier hole on the side already carries the award.
	ErrSideClosed = errors.New("side already has a recorded winner")

	// ErrMarkGated indicates the mark's prerequisite toggle or mark is missing.
	ErrMarkGated = errors.New("mark requires its hole toggle or prerequisite mark")

	// ErrInvalidImport indicates a scorecard import file could not be used.
	ErrInvalidImport = errors.New("invalid scorecard import file")
)
