package gamehandlers

import (
	"fmt"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
	"github.com/ThreeDotsLabs/watermill/message"
)

// gameResultMessages builds the single success or failure result message
// every mutation handler publishes: the full snapshot on success, the error
// string on rejection.
func (h *GameHandlers) gameResultMessages(
	msg *message.Message,
	gameID string,
	game *gamedomain.Game,
	opErr error,
	successTopic, failureTopic string,
) ([]*message.Message, error) {
	if opErr != nil {
		failureMsg, err := h.helpers.CreateResultMessage(
			msg,
			&gameevents.GameResultPayload{
				GameID:  gameID,
				Success: false,
				Error:   opErr.Error(),
			},
			failureTopic,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create failure message: %w", err)
		}
		return []*message.Message{failureMsg}, nil
	}

	successMsg, err := h.helpers.CreateResultMessage(
		msg,
		&gameevents.GameResultPayload{
			GameID:  gameID,
			Success: true,
			Game:    game,
		},
		successTopic,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create success message: %w", err)
	}
	return []*message.Message{successMsg}, nil
}
