package gamedb

import "errors"

// ErrNotFound is returned when a game is not found.
var ErrNotFound = errors.New("game not found")

// ErrScorecardNotFound is returned when an archived scorecard is not found.
var ErrScorecardNotFound = errors.New("scorecard not found")
