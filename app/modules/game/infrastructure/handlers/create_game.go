package gamehandlers

import (
	"context"

	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleCreateGameRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleCreateGameRequest",
		&gameevents.GameCreateRequestPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			createPayload := payload.(*gameevents.GameCreateRequestPayload)

			h.logger.Info("Received GameCreateRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", createPayload.GameID),
				attr.String("course_id", createPayload.CourseID),
				attr.Int("players", len(createPayload.Players)),
			)

			game, err := h.gameService.CreateGame(ctx, gameservice.CreateGameInput{
				GameID:    createPayload.GameID,
				EventName: createPayload.EventName,
				Date:      createPayload.Date,
				CourseID:  createPayload.CourseID,
				Players:   createPayload.Players,
			})

			gameID := createPayload.GameID
			if game != nil {
				gameID = game.ID
			}
			return h.gameResultMessages(msg, gameID, game, err, gameevents.GameCreated, gameevents.GameCreateFailed)
		},
	)

	return wrappedHandler(msg)
}
