package queries

import (
	"context"
	"log/slog"
	"time"

	"tutorhub/internal/infra/cache"

	"github.com/google/uuid"
)

type NotificationListResult struct {
	Items      []*NotificationView
	NextCursor *Cursor
}

type NotificationQueries interface {
	// ListByRecipient pages through a recipient's notifications newest first.
	// A nil returned cursor means the sequence is exhausted.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, after *Cursor, limit int) (*NotificationListResult, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationReadStore interface {
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, beforeCreatedAt time.Time, beforeID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store  NotificationReadStore
	unread *cache.UnreadCountCache
}

func NewNotificationQueries(store NotificationReadStore, unread *cache.UnreadCountCache) NotificationQueries {
	return &notificationQueriesImpl{store: store, unread: unread}
}

func (q *notificationQueriesImpl) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, after *Cursor, limit int) (*NotificationListResult, error) {
	limit = ValidateLimit(limit)

	var (
		beforeCreatedAt time.Time
		beforeID        uuid.UUID
	)
	if after != nil && after.After != "" {
		var err error
		beforeCreatedAt, beforeID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, err
		}
	}

	// Fetch one extra row to know whether another page exists.
	rows, err := q.store.FindByRecipient(ctx, recipientID, unreadOnly, beforeCreatedAt, beforeID, int32(limit+1))
	if err != nil {
		return nil, err
	}

	result := &NotificationListResult{Items: rows}
	if len(rows) > limit {
		result.Items = rows[:limit]
		last := result.Items[len(result.Items)-1]
		result.NextCursor = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return result, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	if count, ok := q.unread.Get(ctx, recipientID); ok {
		return count, nil
	}

	count, err := q.store.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, err
	}

	if err := q.unread.Set(ctx, recipientID, count); err != nil {
		slog.Warn("failed to cache unread count", "recipient_id", recipientID, "error", err)
	}
	return count, nil
}
