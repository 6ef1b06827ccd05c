package utils

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Helpers is the message plumbing shared by all event handlers.
type Helpers interface {
	// UnmarshalPayload decodes a message payload into target.
	UnmarshalPayload(msg *message.Message, target any) error

	// CreateResultMessage builds a message on the given topic, propagating the
	// correlation ID of the originating message.
	CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error)

	// CreateNewMessage builds a message on the given topic with a fresh
	// correlation ID.
	CreateNewMessage(payload any, topic string) (*message.Message, error)
}

// TopicMetadataKey is where outgoing messages carry their publish topic so the
// router can route results without the handler knowing the topology.
const TopicMetadataKey = "topic"

type helpers struct{}

// NewHelpers returns the standard Helpers implementation.
func NewHelpers() Helpers {
	return helpers{}
}

func (helpers) UnmarshalPayload(msg *message.Message, target any) error {
	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return nil
}

func (helpers) CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(TopicMetadataKey, topic)
	if original != nil {
		middleware.SetCorrelationID(middleware.MessageCorrelationID(original), msg)
	}
	return msg, nil
}

func (helpers) CreateNewMessage(payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(TopicMetadataKey, topic)
	middleware.SetCorrelationID(watermill.NewUUID(), msg)
	return msg, nil
}
