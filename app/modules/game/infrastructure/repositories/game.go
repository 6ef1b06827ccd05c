package gamedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new game repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a game snapshot by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, gameID string) (*GameRecord, error) {
	db = r.resolveDB(db)
	record := new(GameRecord)
	err := db.NewSelect().
		Model(record).
		Where("id = ?", gameID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return record, nil
}

// Upsert creates or replaces a game snapshot.
func (r *Impl) Upsert(ctx context.Context, db bun.IDB, record *GameRecord) error {
	db = r.resolveDB(db)
	record.UpdatedAt = time.Now()
	_, err := db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("event_name = EXCLUDED.event_name").
		Set("date = EXCLUDED.date").
		Set("course_id = EXCLUDED.course_id").
		Set("snapshot = EXCLUDED.snapshot").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}
	return nil
}

// Delete removes a game.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, gameID string) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*GameRecord)(nil)).
		Where("id = ?", gameID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListScorecards returns all archived scorecards, newest first.
func (r *Impl) ListScorecards(ctx context.Context, db bun.IDB) ([]Scorecard, error) {
	db = r.resolveDB(db)
	var scorecards []Scorecard
	err := db.NewSelect().
		Model(&scorecards).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scorecards: %w", err)
	}
	return scorecards, nil
}

// GetScorecard retrieves one archived scorecard.
func (r *Impl) GetScorecard(ctx context.Context, db bun.IDB, scorecardID string) (*Scorecard, error) {
	db = r.resolveDB(db)
	scorecard := new(Scorecard)
	err := db.NewSelect().
		Model(scorecard).
		Where("id = ?", scorecardID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScorecardNotFound
		}
		return nil, fmt.Errorf("failed to get scorecard: %w", err)
	}
	return scorecard, nil
}

// UpsertScorecard creates or replaces an archived scorecard.
func (r *Impl) UpsertScorecard(ctx context.Context, db bun.IDB, scorecard *Scorecard) error {
	db = r.resolveDB(db)
	// Imported scorecards carry their own timestamps for newest-wins merges.
	if scorecard.UpdatedAt.IsZero() {
		scorecard.UpdatedAt = time.Now()
	}
	_, err := db.NewInsert().
		Model(scorecard).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("snapshot = EXCLUDED.snapshot").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert scorecard: %w", err)
	}
	return nil
}

// DeleteScorecard removes an archived scorecard.
func (r *Impl) DeleteScorecard(ctx context.Context, db bun.IDB, scorecardID string) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Scorecard)(nil)).
		Where("id = ?", scorecardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete scorecard: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrScorecardNotFound
	}
	return nil
}
