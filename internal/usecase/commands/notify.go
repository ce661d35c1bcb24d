package commands

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/domain/notification"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/metrics"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04 MST"

// emitNotification persists a notification inside the caller's transaction so
// it becomes durable with the state change it describes, and returns the
// recipient for post-commit cache invalidation.
func emitNotification(
	ctx context.Context,
	tx shared.Tx,
	recipientID uuid.UUID,
	eventType notification.EventType,
	title, message string,
	relatedData map[string]any,
	now time.Time,
) error {
	n, err := notification.NewNotification(recipientID, eventType, title, message, relatedData, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.IncNotificationEmitted(eventType.String())
	return nil
}

// fanOutToActiveStudents notifies every student holding a pending or confirmed
// request with the tutor, and returns the notified recipients.
func fanOutToActiveStudents(
	ctx context.Context,
	tx shared.Tx,
	tutorID uuid.UUID,
	eventType notification.EventType,
	title, message string,
	relatedData map[string]any,
	now time.Time,
) ([]uuid.UUID, error) {
	studentIDs, err := tx.Bookings().ActiveStudentIDs(ctx, tx.DB(), tutorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, studentID := range studentIDs {
		if err := emitNotification(ctx, tx, studentID, eventType, title, message, relatedData, now); err != nil {
			return nil, err
		}
	}

	return studentIDs, nil
}

func formatSlotWindow(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format(timeLayout), end.Format(timeLayout))
}
