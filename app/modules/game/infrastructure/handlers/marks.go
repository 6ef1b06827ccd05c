package gamehandlers

import (
	"context"
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleMarkSetRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleMarkSetRequest",
		&gameevents.GameMarkSetPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			markPayload := payload.(*gameevents.GameMarkSetPayload)

			h.logger.Info("Received GameMarkSetRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", markPayload.GameID),
				attr.String("kind", string(markPayload.Kind)),
				attr.Int("hole", markPayload.HoleNumber),
				attr.String("player_id", string(markPayload.PlayerID)),
				attr.Bool("marked", markPayload.Marked),
			)

			var game *gamedomain.Game
			var err error
			switch markPayload.Kind {
			case gameevents.MarkGreenie:
				game, err = h.gameService.SetGreenie(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			case gameevents.MarkFiver:
				game, err = h.gameService.SetFiver(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			case gameevents.MarkFour:
				game, err = h.gameService.SetFour(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			case gameevents.MarkSandy:
				game, err = h.gameService.SetSandy(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			case gameevents.MarkDoubleSandy:
				game, err = h.gameService.SetDoubleSandy(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			case gameevents.MarkLostBall:
				game, err = h.gameService.SetLostBall(ctx, markPayload.GameID, markPayload.HoleNumber, markPayload.PlayerID, markPayload.Marked)
			default:
				err = fmt.Errorf("unknown mark kind %q", markPayload.Kind)
			}
			return h.gameResultMessages(msg, markPayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}

func (h *GameHandlers) HandleHoleToggleRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleHoleToggleRequest",
		&gameevents.GameHoleTogglePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			togglePayload := payload.(*gameevents.GameHoleTogglePayload)

			h.logger.Info("Received GameHoleToggleRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", togglePayload.GameID),
				attr.String("kind", string(togglePayload.Kind)),
				attr.Int("hole", togglePayload.HoleNumber),
				attr.Bool("enabled", togglePayload.Enabled),
			)

			var game *gamedomain.Game
			var err error
			switch togglePayload.Kind {
			case gameevents.ToggleSandyHole:
				game, err = h.gameService.SetSandyHole(ctx, togglePayload.GameID, togglePayload.HoleNumber, togglePayload.Enabled)
			case gameevents.ToggleLostBallHole:
				game, err = h.gameService.SetLostBallHole(ctx, togglePayload.GameID, togglePayload.HoleNumber, togglePayload.Enabled)
			default:
				err = fmt.Errorf("unknown toggle kind %q", togglePayload.Kind)
			}
			return h.gameResultMessages(msg, togglePayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}
