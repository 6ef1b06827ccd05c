package gameservice

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	"github.com/the-tour-club/skins/internal/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateGame starts a new game on the given course.
func (s *GameService) CreateGame(ctx context.Context, input CreateGameInput) (*gamedomain.Game, error) {
	createTx := func(ctx context.Context, db bun.IDB) (gameResult, error) {
		return s.createGameLogic(ctx, db, input)
	}

	result, err := withTelemetry(s, ctx, "CreateGame", input.GameID, func(ctx context.Context) (gameResult, error) {
		return runInTx(s, ctx, createTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// createGameLogic contains the core logic.
func (s *GameService) createGameLogic(ctx context.Context, db bun.IDB, input CreateGameInput) (gameResult, error) {
	course, err := s.courses.ResolveCourse(ctx, input.CourseID)
	if err != nil {
		return results.FailureResult[*gamedomain.Game, error](fmt.Errorf("failed to resolve course %q: %w", input.CourseID, err)), nil
	}

	gameID := input.GameID
	if gameID == "" {
		gameID = uuid.NewString()
	}

	game := gamedomain.NewGame(gameID, input.Date, course, input.Players)
	game.EventName = input.EventName

	record := &gamedb.GameRecord{
		ID:        game.ID,
		EventName: game.EventName,
		Date:      game.Date,
		CourseID:  course.ID,
		Snapshot:  game,
	}
	if err := s.repo.Upsert(ctx, db, record); err != nil {
		return gameResult{}, fmt.Errorf("failed to create game: %w", err)
	}

	return results.SuccessResult[*gamedomain.Game, error](&game), nil
}
