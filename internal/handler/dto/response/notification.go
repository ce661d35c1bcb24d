package response

import (
	"time"

	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID          uuid.UUID      `json:"id"`
	RecipientID uuid.UUID      `json:"recipient_id"`
	EventType   string         `json:"event_type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	RelatedData map[string]any `json:"related_data"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextCursor    string                 `json:"next_cursor,omitempty"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func FromNotificationView(v *queries.NotificationView) NotificationResponse {
	return NotificationResponse{
		ID:          v.ID,
		RecipientID: v.RecipientID,
		EventType:   v.EventType,
		Title:       v.Title,
		Message:     v.Message,
		RelatedData: v.RelatedData,
		IsRead:      v.IsRead,
		CreatedAt:   v.CreatedAt,
	}
}

func FromNotificationList(result *queries.NotificationListResult) NotificationListResponse {
	resp := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(result.Items)),
	}
	for _, v := range result.Items {
		resp.Notifications = append(resp.Notifications, FromNotificationView(v))
	}
	if result.NextCursor != nil {
		resp.NextCursor = result.NextCursor.After
	}
	return resp
}
