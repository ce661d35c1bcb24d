package readstore

import (
	"context"
	"encoding/json"
	"time"

	"tutorhub/internal/infra"
	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) queries.NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

// FindByRecipient pages newest first with a keyset on (created_at, id). A zero
// beforeCreatedAt means the first page.
func (s *NotificationReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, beforeCreatedAt time.Time, beforeID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	query := `
		SELECT id, recipient_id, event_type, title, message, related_data, is_read, created_at, updated_at
		FROM notifications
		WHERE recipient_id = $1
		  AND ($2 = false OR is_read = false)
		  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4))
		ORDER BY created_at DESC, id DESC
		LIMIT $5
	`

	var beforeArg any
	if !beforeCreatedAt.IsZero() {
		beforeArg = beforeCreatedAt
	}

	rows, err := s.pool.Query(ctx, query, recipientID, unreadOnly, beforeArg, beforeID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		view, err := scanNotificationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read notification rows", err)
	}

	return views, nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_id = $1 AND is_read = false
	`

	var count int64
	if err := s.pool.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count unread notifications", err)
	}

	return count, nil
}

func scanNotificationView(row pgx.Row) (*queries.NotificationView, error) {
	var (
		v       queries.NotificationView
		rawData []byte
	)
	err := row.Scan(
		&v.ID,
		&v.RecipientID,
		&v.EventType,
		&v.Title,
		&v.Message,
		&rawData,
		&v.IsRead,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &v.RelatedData); err != nil {
			return nil, err
		}
	}

	return &v, nil
}
