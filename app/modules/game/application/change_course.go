package gameservice

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// ChangeCourse swaps the game onto a different course. Scores and every
// side-game mark reset; player identities survive.
func (s *GameService) ChangeCourse(ctx context.Context, gameID string, courseID string) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "ChangeCourse", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		course, err := s.courses.ResolveCourse(ctx, courseID)
		if err != nil {
			return g, fmt.Errorf("failed to resolve course %q: %w", courseID, err)
		}
		return gamedomain.ChangeCourse(g, course), nil
	})
}
