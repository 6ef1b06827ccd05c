package eventbus

import (
	"context"
	"fmt"

	courseevents "github.com/the-tour-club/skins/app/modules/course/events"
	gameevents "github.com/the-tour-club/skins/app/modules/game/events"
)

// InitializeStreams provisions the JetStream streams every module publishes
// to. Called once during application startup.
func InitializeStreams(ctx context.Context, bus EventBus) error {
	streams := []string{
		gameevents.GameStreamName,
		courseevents.CourseStreamName,
	}

	for _, stream := range streams {
		if err := bus.CreateStream(ctx, stream); err != nil {
			return fmt.Errorf("failed to initialize stream %s: %w", stream, err)
		}
	}
	return nil
}
