package response

import (
	"time"

	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID  `json:"id"`
	SlotID     uuid.UUID  `json:"slot_id"`
	StudentID  uuid.UUID  `json:"student_id"`
	TutorID    uuid.UUID  `json:"tutor_id"`
	CourseName string     `json:"course_name"`
	Status     string     `json:"status"`
	SlotStart  time.Time  `json:"slot_start"`
	SlotEnd    time.Time  `json:"slot_end"`
	CreatedAt  time.Time  `json:"created_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type BookingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:         v.ID,
		SlotID:     v.SlotID,
		StudentID:  v.StudentID,
		TutorID:    v.TutorID,
		CourseName: v.CourseName,
		Status:     v.Status,
		SlotStart:  v.SlotStart,
		SlotEnd:    v.SlotEnd,
		CreatedAt:  v.CreatedAt,
		DecidedAt:  v.DecidedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) BookingListResponse {
	resp := BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(views)),
	}
	for _, v := range views {
		resp.Bookings = append(resp.Bookings, FromBookingView(v))
	}
	return resp
}
