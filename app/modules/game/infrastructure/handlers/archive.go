package gamehandlers

import (
	"context"
	"fmt"

	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/the-tour-club/skins/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

func (h *GameHandlers) HandleArchiveRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleArchiveRequest",
		&gameevents.GameArchivePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			archivePayload := payload.(*gameevents.GameArchivePayload)

			h.logger.Info("Received GameArchiveRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("game_id", archivePayload.GameID),
			)

			stored, err := h.gameService.SaveScorecard(ctx, archivePayload.GameID, archivePayload.Name)
			if err != nil {
				failureMsg, errCreate := h.helpers.CreateResultMessage(
					msg,
					&gameevents.GameArchivedPayload{
						GameID:  archivePayload.GameID,
						Success: false,
						Error:   err.Error(),
					},
					gameevents.GameArchiveFail,
				)
				if errCreate != nil {
					return nil, fmt.Errorf("failed to create failure message: %w", errCreate)
				}
				return []*message.Message{failureMsg}, nil
			}

			successMsg, err := h.helpers.CreateResultMessage(
				msg,
				&gameevents.GameArchivedPayload{
					GameID:      archivePayload.GameID,
					ScorecardID: stored.ID,
					Success:     true,
				},
				gameevents.GameArchived,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create success message: %w", err)
			}
			return []*message.Message{successMsg}, nil
		},
	)

	return wrappedHandler(msg)
}
