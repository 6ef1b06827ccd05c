package gamedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for game and scorecard persistence.
type Repository interface {
	// GetByID retrieves a game snapshot by its ID.
	GetByID(ctx context.Context, db bun.IDB, gameID string) (*GameRecord, error)

	// Upsert creates or replaces a game snapshot.
	Upsert(ctx context.Context, db bun.IDB, record *GameRecord) error

	// Delete removes a game.
	Delete(ctx context.Context, db bun.IDB, gameID string) error

	// ListScorecards returns all archived scorecards, newest first.
	ListScorecards(ctx context.Context, db bun.IDB) ([]Scorecard, error)

	// GetScorecard retrieves one archived scorecard.
	GetScorecard(ctx context.Context, db bun.IDB, scorecardID string) (*Scorecard, error)

	// UpsertScorecard creates or replaces an archived scorecard.
	UpsertScorecard(ctx context.Context, db bun.IDB, scorecard *Scorecard) error

	// DeleteScorecard removes an archived scorecard.
	DeleteScorecard(ctx context.Context, db bun.IDB, scorecardID string) error
}
