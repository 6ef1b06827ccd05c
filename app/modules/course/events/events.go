package courseevents

import (
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// Stream
const (
	CourseStreamName = "course"
)

// Requests
const (
	CourseSaveRequest   = "course.save.request"
	CourseDeleteRequest = "course.delete.request"
)

// Results
const (
	CourseSaved      = "course.saved"
	CourseSaveFailed = "course.save.failed"
	CourseDeleted    = "course.deleted"
	CourseDeleteFail = "course.delete.failed"
)

type CourseSavePayload struct {
	Course gamedomain.Course `json:"course"`
}

type CourseDeletePayload struct {
	CourseID string `json:"courseId"`
}

type CourseResultPayload struct {
	CourseID string             `json:"courseId"`
	Success  bool               `json:"success"`
	Course   *gamedomain.Course `json:"course,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
	Error    string             `json:"error,omitempty"`
}
