package gameservice

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// SetClosestToPin adjudicates a par-3: a non-nil winner closes the side and
// cascades away later decisions, a nil winner passes play to the next par-3.
func (s *GameService) SetClosestToPin(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetClosestToPin", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireCandidate(g, holeNumber, 3); err != nil {
			return g, err
		}
		if winner != nil {
			if err := requirePlayer(g, *winner); err != nil {
				return g, err
			}
		}
		if !gamedomain.ClosestDecisionOpen(g, holeNumber) {
			return g, fmt.Errorf("%w: hole %d", ErrSideClosed, holeNumber)
		}
		return gamedomain.SetClosestToPin(g, holeNumber, winner), nil
	})
}

// ClearClosestToPin retracts a CTP decision, reopening the hole and pruning
// any dependent greenie marks.
func (s *GameService) ClearClosestToPin(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "ClearClosestToPin", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireCandidate(g, holeNumber, 3); err != nil {
			return g, err
		}
		return gamedomain.ClearClosestToPin(g, holeNumber), nil
	})
}

// SetLongestDrive adjudicates a par-5, symmetric to SetClosestToPin.
func (s *GameService) SetLongestDrive(ctx context.Context, gameID string, holeNumber int, winner *gamedomain.PlayerID) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "SetLongestDrive", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireCandidate(g, holeNumber, 5); err != nil {
			return g, err
		}
		if winner != nil {
			if err := requirePlayer(g, *winner); err != nil {
				return g, err
			}
		}
		if !gamedomain.LongestDecisionOpen(g, holeNumber) {
			return g, fmt.Errorf("%w: hole %d", ErrSideClosed, holeNumber)
		}
		return gamedomain.SetLongestDrive(g, holeNumber, winner), nil
	})
}

// ClearLongestDrive retracts an LD decision.
func (s *GameService) ClearLongestDrive(ctx context.Context, gameID string, holeNumber int) (*gamedomain.Game, error) {
	return s.mutateGame(ctx, "ClearLongestDrive", gameID, func(g gamedomain.Game) (gamedomain.Game, error) {
		if err := requireCandidate(g, holeNumber, 5); err != nil {
			return g, err
		}
		return gamedomain.ClearLongestDrive(g, holeNumber), nil
	})
}

// requireCandidate rejects holes that do not exist or do not have the par a
// winner adjudication needs.
func requireCandidate(g gamedomain.Game, holeNumber, par int) error {
	ch, ok := g.Course.Hole(holeNumber)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHole, holeNumber)
	}
	if ch.Par != par {
		return fmt.Errorf("%w: hole %d is a par %d", ErrIneligibleHole, holeNumber, ch.Par)
	}
	return nil
}
