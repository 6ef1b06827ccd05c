package gameservice

import (
	"context"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// RecordScore overwrites one player's strokes and putts on one hole and
// recomputes the full snapshot.
func (s *GameService) RecordScore(ctx context.Context, gameID string, playerID gamedomain.PlayerID, holeNumber, strokes, putts int) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "RecordScore", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if err := requireHole(g, holeNumber); err != nil {
			return g, err
		}
		return gamedomain.RecordScore(g, playerID, holeNumber, strokes, putts), nil
	})
}
