package gameservice

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// SetGreenie sets a greenie mark. The hole must be in the eligible set
// derived from the current CTP state.
func (s *GameService) SetGreenie(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetGreenie", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !containsHole(gamedomain.GreenieHoles(g.Course, g.ClosestToPin), holeNumber) {
			return g, fmt.Errorf("%w: greenie on hole %d", ErrIneligibleHole, holeNumber)
		}
		return gamedomain.SetGreenie(g, holeNumber, playerID, marked), nil
	})
}

// SetFiver sets a fiver mark on a par-5.
func (s *GameService) SetFiver(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetFiver", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !containsHole(gamedomain.FiverHoles(g.Course), holeNumber) {
			return g, fmt.Errorf("%w: fiver on hole %d", ErrIneligibleHole, holeNumber)
		}
		return gamedomain.SetFiver(g, holeNumber, playerID, marked), nil
	})
}

// SetFour sets a four mark on the side's designated par-4.
func (s *GameService) SetFour(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetFour", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !containsHole(gamedomain.FourHoles(g.Course), holeNumber) {
			return g, fmt.Errorf("%w: four on hole %d", ErrIneligibleHole, holeNumber)
		}
		return gamedomain.SetFour(g, holeNumber, playerID, marked), nil
	})
}

// SetSandyHole sets the hole-level sandy toggle. Turning it off cascades
// away the hole's sandy and double-sandy marks.
func (s *GameService) SetSandyHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetSandyHole", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireHole(g, holeNumber); err != nil {
			return g, err
		}
		return gamedomain.SetSandyHole(g, holeNumber, enabled), nil
	})
}

// SetLostBallHole sets the hole-level lost-ball toggle.
func (s *GameService) SetLostBallHole(ctx context.Context, gameID string, holeNumber int, enabled bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetLostBallHole", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireHole(g, holeNumber); err != nil {
			return g, err
		}
		return gamedomain.SetLostBallHole(g, holeNumber, enabled), nil
	})
}

// SetSandy sets a player's sandy mark; the hole toggle must be on.
func (s *GameService) SetSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetSandy", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !g.SandyHoles[holeNumber] {
			return g, fmt.Errorf("%w: sandy on hole %d", ErrMarkGated, holeNumber)
		}
		return gamedomain.SetSandy(g, holeNumber, playerID, marked), nil
	})
}

// SetDoubleSandy sets a player's double-sandy mark; the player must already
// hold a sandy on the hole.
func (s *GameService) SetDoubleSandy(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetDoubleSandy", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !g.Sandies[holeNumber][playerID] {
			return g, fmt.Errorf("%w: double sandy on hole %d", ErrMarkGated, holeNumber)
		}
		return gamedomain.SetDoubleSandy(g, holeNumber, playerID, marked), nil
	})
}

// SetLostBall sets a player's lost-ball mark; the hole toggle must be on.
func (s *GameService) SetLostBall(ctx context.Context, gameID string, holeNumber int, playerID gamedomain.PlayerID, marked bool) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetLostBall", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requirePlayer(g, playerID); err != nil {
			return g, err
		}
		if !g.LostBallHoles[holeNumber] {
			return g, fmt.Errorf("%w: lost ball on hole %d", ErrMarkGated, holeNumber)
		}
		return gamedomain.SetLostBall(g, holeNumber, playerID, marked), nil
	})
}
