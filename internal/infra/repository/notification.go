package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tutorhub/internal/domain/notification"
	"tutorhub/internal/infra"
	"tutorhub/internal/infra/db"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, n *notification.Notification) error {
	relatedData, err := json.Marshal(n.RelatedData())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode related data", err)
	}

	query := `
		INSERT INTO notifications (id, recipient_id, event_type, title, message, related_data, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = dbtx.Exec(ctx, query,
		n.ID(),
		n.RecipientID(),
		n.EventType().String(),
		n.Title(),
		n.Message(),
		relatedData,
		n.IsRead(),
		n.CreatedAt(),
		n.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification", err)
	}

	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*notification.Notification, error) {
	query := `
		SELECT id, recipient_id, event_type, title, message, related_data, is_read, created_at, updated_at
		FROM notifications
		WHERE id = $1
	`

	var (
		notifID     uuid.UUID
		recipientID uuid.UUID
		eventType   string
		title       string
		message     string
		relatedRaw  []byte
		isRead      bool
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := dbtx.QueryRow(ctx, query, id).Scan(
		&notifID, &recipientID, &eventType, &title, &message, &relatedRaw, &isRead, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find notification", err)
	}

	var relatedData map[string]any
	if err := json.Unmarshal(relatedRaw, &relatedData); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode related data", err)
	}

	return notification.ReconstructNotification(
		notifID, recipientID, notification.EventType(eventType),
		title, message, relatedData, isRead, createdAt, updatedAt,
	), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error {
	query := `
		UPDATE notifications
		SET is_read = true, updated_at = $2
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, id, now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, dbtx db.DBTX, recipientID uuid.UUID, now time.Time) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = true, updated_at = $2
		WHERE recipient_id = $1 AND is_read = false
	`

	tag, err := dbtx.Exec(ctx, query, recipientID, now)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notifications read", err)
	}

	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	query := `DELETE FROM notifications WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}

	return nil
}
