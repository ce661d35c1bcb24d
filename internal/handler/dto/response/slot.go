package response

import (
	"time"

	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	TutorID   uuid.UUID `json:"tutor_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotListResponse struct {
	Slots      []SlotResponse `json:"slots"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func FromSlotView(v *queries.SlotView) SlotResponse {
	return SlotResponse{
		ID:        v.ID,
		TutorID:   v.TutorID,
		StartAt:   v.StartAt,
		EndAt:     v.EndAt,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView, next *queries.Cursor) SlotListResponse {
	resp := SlotListResponse{
		Slots: make([]SlotResponse, 0, len(views)),
	}
	for _, v := range views {
		resp.Slots = append(resp.Slots, FromSlotView(v))
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
