package gameservice

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	"github.com/the-tour-club/skins/internal/results"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders a game's scorecard as a spreadsheet: one row per hole
// with par and handicap, stroke and putt columns per player, and a standings
// sheet with totals and skins.
func (s *GameService) ExportXLSX(ctx context.Context, gameID string) ([]byte, error) {
	result, err := withTelemetry(s, ctx, "ExportXLSX", gameID, func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		game, err := s.GetGame(ctx, gameID)
		if err != nil {
			return results.FailureResult[[]byte, error](err), nil
		}
		data, err := renderScorecardXLSX(*game)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to render spreadsheet: %w", err)
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func renderScorecardXLSX(game gamedomain.Game) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const scoreSheet = "Scorecard"
	if err := f.SetSheetName("Sheet1", scoreSheet); err != nil {
		return nil, err
	}

	header := []any{"Hole", "Par", "Hcp"}
	for _, p := range game.Players {
		header = append(header, p.Name+" Strokes", p.Name+" Putts")
	}
	if err := setRow(f, scoreSheet, 1, header); err != nil {
		return nil, err
	}

	for i, ch := range game.Course.Holes {
		row := []any{ch.HoleNumber, ch.Par, ch.Handicap}
		for _, p := range game.Players {
			strokes, putts := holeScore(p, ch.HoleNumber)
			row = append(row, cellOrBlank(strokes), cellOrBlank(putts))
		}
		if err := setRow(f, scoreSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	totals := []any{"Total", "", ""}
	for _, p := range game.Players {
		totals = append(totals, p.TotalScore, p.TotalPutts)
	}
	if err := setRow(f, scoreSheet, len(game.Course.Holes)+2, totals); err != nil {
		return nil, err
	}

	const standingsSheet = "Standings"
	if _, err := f.NewSheet(standingsSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, standingsSheet, 1, []any{"Player", "Total", "Putts", "Skins"}); err != nil {
		return nil, err
	}
	for i, p := range game.Players {
		if err := setRow(f, standingsSheet, i+2, []any{p.Name, p.TotalScore, p.TotalPutts, p.Skins}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// cellOrBlank keeps unplayed holes empty instead of writing zeros.
func cellOrBlank(value int) any {
	if value == 0 {
		return ""
	}
	return value
}

func holeScore(p gamedomain.Player, holeNumber int) (strokes, putts int) {
	for _, h := range p.Holes {
		if h.HoleNumber == holeNumber {
			return h.Strokes, h.Putts
		}
	}
	return 0, 0
}
