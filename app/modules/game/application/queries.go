package gameservice

import (
	"context"
	"errors"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	"github.com/the-tour-club/skins/internal/results"
	"github.com/uptrace/bun"
)

// GetGame returns the current snapshot of a game.
func (s *GameService) GetGame(ctx context.Context, gameID string) (*gamedomain.Game, error) {
	getTx := func(ctx context.Context, db bun.IDB) (gameResult, error) {
		return s.getGameLogic(ctx, db, gameID)
	}

	result, err := withTelemetry(s, ctx, "GetGame", gameID, func(ctx context.Context) (gameResult, error) {
		return runInTx(s, ctx, getTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// getGameLogic contains the core logic. Derived state is re-established on
// load so older snapshots stay consistent with the current rules.
func (s *GameService) getGameLogic(ctx context.Context, db bun.IDB, gameID string) (gameResult, error) {
	record, err := s.repo.GetByID(ctx, db, gameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*gamedomain.Game, error](ErrGameNotFound), nil
		}
		return gameResult{}, fmt.Errorf("failed to get game: %w", err)
	}

	game := gamedomain.Recompute(record.Snapshot)
	return results.SuccessResult[*gamedomain.Game, error](&game), nil
}

// DeleteGame removes a game.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.Delete(ctx, db, gameID); err != nil {
			if errors.Is(err, gamedb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrGameNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to delete game: %w", err)
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}

	result, err := withTelemetry(s, ctx, "DeleteGame", gameID, func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
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
