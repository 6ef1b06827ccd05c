package gameservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	"github.com/the-tour-club/skins/internal/results"
	"github.com/uptrace/bun"
)

const (
	scorecardSchema        = "the-tour-scorecard"
	scorecardExportVersion = 1
	untitledScorecardName  = "Untitled Scorecard"
)

type scorecardResult = results.OperationResult[*StoredScorecard, error]

// SaveScorecard archives the game's current snapshot under the given name.
// Saving again with the same game replaces the previous archive entry.
func (s *GameService) SaveScorecard(ctx context.Context, gameID, name string) (*StoredScorecard, error) {
	saveTx := func(ctx context.Context, db bun.IDB) (scorecardResult, error) {
		return s.saveScorecardLogic(ctx, db, gameID, name)
	}

	result, err := withTelemetry(s, ctx, "SaveScorecard", gameID, func(ctx context.Context) (scorecardResult, error) {
		return runInTx(s, ctx, saveTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// saveScorecardLogic contains the core logic.
func (s *GameService) saveScorecardLogic(ctx context.Context, db bun.IDB, gameID, name string) (scorecardResult, error) {
	record, err := s.repo.GetByID(ctx, db, gameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*StoredScorecard, error](ErrGameNotFound), nil
		}
		return scorecardResult{}, fmt.Errorf("failed to load game: %w", err)
	}

	if name == "" {
		name = record.Snapshot.EventName
	}
	if name == "" {
		name = untitledScorecardName
	}

	now := time.Now().UTC()
	scorecard := &gamedb.Scorecard{
		ID:        gameID,
		Name:      name,
		Snapshot:  record.Snapshot,
		CreatedAt: record.CreatedAt,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertScorecard(ctx, db, scorecard); err != nil {
		return scorecardResult{}, fmt.Errorf("failed to archive scorecard: %w", err)
	}

	stored := storedFromRecord(*scorecard)
	return results.SuccessResult[*StoredScorecard, error](&stored), nil
}

// ListScorecards returns all archived scorecards, newest first.
func (s *GameService) ListScorecards(ctx context.Context) ([]StoredScorecard, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]StoredScorecard, error], error) {
		scorecards, err := s.repo.ListScorecards(ctx, db)
		if err != nil {
			return results.OperationResult[[]StoredScorecard, error]{}, fmt.Errorf("failed to list scorecards: %w", err)
		}
		stored := make([]StoredScorecard, 0, len(scorecards))
		for _, sc := range scorecards {
			stored = append(stored, storedFromRecord(sc))
		}
		return results.SuccessResult[[]StoredScorecard, error](stored), nil
	}

	result, err := withTelemetry(s, ctx, "ListScorecards", "archive", func(ctx context.Context) (results.OperationResult[[]StoredScorecard, error], error) {
		return runInTx(s, ctx, listTx)
	})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

// DeleteScorecard removes an archived scorecard.
func (s *GameService) DeleteScorecard(ctx context.Context, scorecardID string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteScorecard(ctx, db, scorecardID); err != nil {
			if errors.Is(err, gamedb.ErrScorecardNotFound) {
				return results.FailureResult[struct{}, error](ErrScorecardNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to delete scorecard: %w", err)
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}

	result, err := withTelemetry(s, ctx, "DeleteScorecard", scorecardID, func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		return runInTx(s, ctx, deleteTx)
	})
	if err != nil {
		return err
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

// ExportScorecards builds the portable archive file containing every stored
// scorecard.
func (s *GameService) ExportScorecards(ctx context.Context) (*ScorecardExportFile, error) {
	scorecards, err := s.ListScorecards(ctx)
	if err != nil {
		return nil, err
	}
	return &ScorecardExportFile{
		Schema:     scorecardSchema,
		Version:    scorecardExportVersion,
		ExportedAt: time.Now().UTC(),
		Scorecards: scorecards,
	}, nil
}

// ImportScorecards merges a previously exported archive file into the store.
// Known IDs are replaced only when the incoming copy is newer; unknown IDs
// are added.
func (s *GameService) ImportScorecards(ctx context.Context, raw []byte) (*ImportSummary, error) {
	importTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*ImportSummary, error], error) {
		return s.importScorecardsLogic(ctx, db, raw)
	}

	result, err := withTelemetry(s, ctx, "ImportScorecards", "archive", func(ctx context.Context) (results.OperationResult[*ImportSummary, error], error) {
		return runInTx(s, ctx, importTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// importScorecardsLogic contains the core logic.
func (s *GameService) importScorecardsLogic(ctx context.Context, db bun.IDB, raw []byte) (results.OperationResult[*ImportSummary, error], error) {
	var file ScorecardExportFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return results.FailureResult[*ImportSummary, error](fmt.Errorf("%w: not valid JSON", ErrInvalidImport)), nil
	}
	if file.Schema != scorecardSchema || file.Scorecards == nil {
		return results.FailureResult[*ImportSummary, error](fmt.Errorf("%w: missing scorecards data", ErrInvalidImport)), nil
	}

	summary := &ImportSummary{}
	if file.Version > scorecardExportVersion {
		summary.Warnings = append(summary.Warnings, "import file was created by a newer version")
	}

	incoming := make([]StoredScorecard, 0, len(file.Scorecards))
	for _, sc := range file.Scorecards {
		if sc.ID == "" || len(sc.Data.Players) == 0 {
			continue
		}
		incoming = append(incoming, normalizeScorecard(sc))
	}
	if len(incoming) == 0 {
		summary.Warnings = append(summary.Warnings, "no valid scorecards found in the import")
		return results.SuccessResult[*ImportSummary, error](summary), nil
	}

	existing, err := s.repo.ListScorecards(ctx, db)
	if err != nil {
		return results.OperationResult[*ImportSummary, error]{}, fmt.Errorf("failed to list scorecards: %w", err)
	}
	updatedAt := make(map[string]time.Time, len(existing))
	for _, sc := range existing {
		updatedAt[sc.ID] = sc.UpdatedAt
	}

	for _, sc := range incoming {
		current, known := updatedAt[sc.ID]
		if known && !sc.UpdatedAt.After(current) {
			continue
		}
		if !known {
			summary.AddedCount++
		}
		record := &gamedb.Scorecard{
			ID:        sc.ID,
			Name:      sc.Name,
			Snapshot:  gamedomain.Recompute(sc.Data),
			CreatedAt: sc.CreatedAt,
			UpdatedAt: sc.UpdatedAt,
		}
		if err := s.repo.UpsertScorecard(ctx, db, record); err != nil {
			return results.OperationResult[*ImportSummary, error]{}, fmt.Errorf("failed to upsert imported scorecard: %w", err)
		}
		summary.Merged++
	}

	return results.SuccessResult[*ImportSummary, error](summary), nil
}

// normalizeScorecard backfills names the way older exports left them blank.
func normalizeScorecard(sc StoredScorecard) StoredScorecard {
	if sc.Data.EventName == "" {
		sc.Data.EventName = sc.Name
	}
	if sc.Data.EventName == "" {
		sc.Data.EventName = untitledScorecardName
	}
	if sc.Name == "" {
		sc.Name = sc.Data.EventName
	}
	return sc
}

func storedFromRecord(sc gamedb.Scorecard) StoredScorecard {
	return StoredScorecard{
		ID:        sc.ID,
		Name:      sc.Name,
		CreatedAt: sc.CreatedAt,
		UpdatedAt: sc.UpdatedAt,
		Data:      sc.Snapshot,
	}
}
