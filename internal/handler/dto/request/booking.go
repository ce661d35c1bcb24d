package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	SlotID     uuid.UUID `json:"slot_id" binding:"required"`
	TutorID    uuid.UUID `json:"tutor_id" binding:"required"`
	CourseName string    `json:"course_name" binding:"required" example:"Linear Algebra"`
}
