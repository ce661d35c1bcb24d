package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	TutorID   uuid.UUID `json:"tutor_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingView struct {
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

type NotificationView struct {
	ID          uuid.UUID      `json:"id"`
	RecipientID uuid.UUID      `json:"recipient_id"`
	EventType   string         `json:"event_type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	RelatedData map[string]any `json:"related_data"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
