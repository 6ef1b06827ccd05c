package gamehandlers

import (
	"context"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleClosestSetRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleClosestSetRequest",
		&gameevents.GameWinnerSetPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			winnerPayload := payload.(*gameevents.GameWinnerSetPayload)

			h.logger.Info("Received GameClosestSetRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", winnerPayload.GameID),
				attr.Int("hole", winnerPayload.HoleNumber),
				attr.Bool("clear", winnerPayload.Clear),
			)

			var game *gamedomain.Game
			var err error
			if winnerPayload.Clear {
				game, err = h.gameService.ClearClosestToPin(ctx, winnerPayload.GameID, winnerPayload.HoleNumber)
			} else {
				game, err = h.gameService.SetClosestToPin(ctx, winnerPayload.GameID, winnerPayload.HoleNumber, winnerPayload.Winner)
			}
			return h.gameResultMessages(msg, winnerPayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}

func (h *GameHandlers) HandleLongestSetRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleLongestSetRequest",
		&gameevents.GameWinnerSetPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			winnerPayload := payload.(*gameevents.GameWinnerSetPayload)

			h.logger.Info("Received GameLongestSetRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", winnerPayload.GameID),
				attr.Int("hole", winnerPayload.HoleNumber),
				attr.Bool("clear", winnerPayload.Clear),
			)

			var game *gamedomain.Game
			var err error
			if winnerPayload.Clear {
				game, err = h.gameService.ClearLongestDrive(ctx, winnerPayload.GameID, winnerPayload.HoleNumber)
			} else {
				game, err = h.gameService.SetLongestDrive(ctx, winnerPayload.GameID, winnerPayload.HoleNumber, winnerPayload.Winner)
			}
			return h.gameResultMessages(msg, winnerPayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}
