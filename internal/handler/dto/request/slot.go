package request

import "time"

type PublishSlotRequest struct {
	StartAt time.Time `json:"start_at" binding:"required" example:"2025-07-01T10:00:00Z"`
	EndAt   time.Time `json:"end_at" binding:"required" example:"2025-07-01T11:00:00Z"`
}

type EditSlotRequest struct {
	StartAt time.Time `json:"start_at" binding:"required" example:"2025-07-01T14:00:00Z"`
	EndAt   time.Time `json:"end_at" binding:"required" example:"2025-07-01T15:00:00Z"`
}
