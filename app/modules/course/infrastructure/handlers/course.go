package coursehandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	courseevents "github.com/the-tour-club/skins/app/modules/course/events"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	"github.com/the-tour-club/skins/internal/observability/attr"
)

func (h *CourseHandlers) HandleSaveRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleSaveRequest",
		&courseevents.CourseSavePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			savePayload := payload.(*courseevents.CourseSavePayload)

			h.logger.Info("Received CourseSaveRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("course_id", savePayload.Course.ID),
				attr.String("course_name", savePayload.Course.Name),
			)

			result, err := h.courseService.SaveCustomCourse(ctx, savePayload.Course)
			if err != nil {
				return h.courseResultMessages(msg, savePayload.Course.ID, nil, nil, err, courseevents.CourseSaved, courseevents.CourseSaveFailed)
			}
			return h.courseResultMessages(msg, result.Course.ID, &result.Course, result.Warnings, nil, courseevents.CourseSaved, courseevents.CourseSaveFailed)
		},
	)

	return wrappedHandler(msg)
}

func (h *CourseHandlers) HandleDeleteRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleDeleteRequest",
		&courseevents.CourseDeletePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			deletePayload := payload.(*courseevents.CourseDeletePayload)

			h.logger.Info("Received CourseDeleteRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("course_id", deletePayload.CourseID),
			)

			err := h.courseService.DeleteCustomCourse(ctx, deletePayload.CourseID)
			return h.courseResultMessages(msg, deletePayload.CourseID, nil, nil, err, courseevents.CourseDeleted, courseevents.CourseDeleteFail)
		},
	)

	return wrappedHandler(msg)
}

// courseResultMessages builds the single success or failure result message
// the course handlers publish.
func (h *CourseHandlers) courseResultMessages(
	msg *message.Message,
	courseID string,
	course *gamedomain.Course,
	warnings []string,
	opErr error,
	successTopic, failureTopic string,
) ([]*message.Message, error) {
	if opErr != nil {
		failureMsg, err := h.helpers.CreateResultMessage(
			msg,
			&courseevents.CourseResultPayload{
				CourseID: courseID,
				Success:  false,
				Error:    opErr.Error(),
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
		&courseevents.CourseResultPayload{
			CourseID: courseID,
			Success:  true,
			Course:   course,
			Warnings: warnings,
		},
		successTopic,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create success message: %w", err)
	}
	return []*message.Message{successMsg}, nil
}
