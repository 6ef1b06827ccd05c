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

type gameResult = results.OperationResult[*gamedomain.Game, error]

// mutateGame is the shared load-apply-persist path behind every mutation
// operation. apply returns the next snapshot or a domain rejection; domain
// rejections become failure results, infrastructure errors propagate.
func (s *GameService) mutateGame(
	ctx context.Context,
	operationName, gameID string,
	apply func(gamedomain.Game) (gamedomain.Game, error),
) (*gamedomain.Game, error) {
	mutateTx := func(ctx context.Context, db bun.IDB) (gameResult, error) {
		return s.mutateGameLogic(ctx, db, gameID, apply)
	}

	result, err := withTelemetry(s, ctx, operationName, gameID, func(ctx context.Context) (gameResult, error) {
		return runInTx(s, ctx, mutateTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// mutateGameLogic contains the core load-apply-persist logic.
func (s *GameService) mutateGameLogic(
	ctx context.Context,
	db bun.IDB,
	gameID string,
	apply func(gamedomain.Game) (gamedomain.Game, error),
) (gameResult, error) {
	record, err := s.repo.GetByID(ctx, db, gameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*gamedomain.Game, error](ErrGameNotFound), nil
		}
		return gameResult{}, fmt.Errorf("failed to load game: %w", err)
	}

	next, err := apply(record.Snapshot)
	if err != nil {
		return results.FailureResult[*gamedomain.Game, error](err), nil
	}

	record.Snapshot = next
	record.EventName = next.EventName
	record.Date = next.Date
	record.CourseID = next.Course.ID
	if err := s.repo.Upsert(ctx, db, record); err != nil {
		return gameResult{}, fmt.Errorf("failed to persist game: %w", err)
	}

	return results.SuccessResult[*gamedomain.Game, error](&next), nil
}

// requirePlayer rejects marks and scores targeting players outside the game.
func requirePlayer(g gamedomain.Game, playerID gamedomain.PlayerID) error {
	if _, known := g.Player(playerID); !known {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	return nil
}

// requireHole rejects hole numbers outside the game's course.
func requireHole(g gamedomain.Game, holeNumber int) error {
	if _, ok := g.Course.Hole(holeNumber); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHole, holeNumber)
	}
	return nil
}

func containsHole(holes []int, holeNumber int) bool {
	for _, h := range holes {
		if h == holeNumber {
			return true
		}
	}
	return false
}
