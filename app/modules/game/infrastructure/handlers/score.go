package gamehandlers

import (
	"context"

	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleScoreUpdateRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleScoreUpdateRequest",
		&gameevents.GameScoreUpdatePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			scorePayload := payload.(*gameevents.GameScoreUpdatePayload)

			h.logger.Info("Received GameScoreUpdateRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", scorePayload.GameID),
				attr.String("player_id", string(scorePayload.PlayerID)),
				attr.Int("hole", scorePayload.HoleNumber),
				attr.Int("strokes", scorePayload.Strokes),
			)

			game, err := h.gameService.RecordScore(
				ctx,
				scorePayload.GameID,
				scorePayload.PlayerID,
				scorePayload.HoleNumber,
				scorePayload.Strokes,
				scorePayload.Putts,
			)
			return h.gameResultMessages(msg, scorePayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}
