package gameservice

import (
	"bytes"
	"context"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	"github.com/the-tour-club/skins/internal/results"
	"github.com/wcharczuk/go-chart/v2"
)

// StandingsChart renders the current skins standings as a PNG bar chart.
func (s *GameService) StandingsChart(ctx context.Context, gameID string) ([]byte, error) {
	result, err := withTelemetry(s, ctx, "StandingsChart", gameID, func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		game, err := s.GetGame(ctx, gameID)
		if err != nil {
			return results.FailureResult[[]byte, error](err), nil
		}
		data, err := renderStandingsChart(*game)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
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

func renderStandingsChart(game gamedomain.Game) ([]byte, error) {
	if len(game.Players) == 0 {
		return renderNoDataPlaceholder("No players in this game")
	}

	bars := make([]chart.Value, 0, len(game.Players))
	maxSkins := 0.0
	for _, p := range game.Players {
		bars = append(bars, chart.Value{
			Label: p.Name,
			Value: float64(p.Skins),
		})
		if float64(p.Skins) > maxSkins {
			maxSkins = float64(p.Skins)
		}
	}

	graph := chart.BarChart{
		Title:    "Skins",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxSkins + 1,
			},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
