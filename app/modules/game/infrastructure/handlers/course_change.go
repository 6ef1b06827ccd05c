package gamehandlers

import (
	"context"

	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleCourseChangeRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleCourseChangeRequest",
		&gameevents.GameCourseChangePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			changePayload := payload.(*gameevents.GameCourseChangePayload)

			h.logger.Info("Received GameCourseChangeRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", changePayload.GameID),
				attr.String("course_id", changePayload.CourseID),
			)

			game, err := h.gameService.ChangeCourse(ctx, changePayload.GameID, changePayload.CourseID)
			return h.gameResultMessages(msg, changePayload.GameID, game, err, gameevents.GameUpdated, gameevents.GameUpdateFailed)
		},
	)

	return wrappedHandler(msg)
}
