//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestSlot(t *testing.T, db DBLike, tutorID uuid.UUID, startAt, endAt time.Time, status string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO time_slots (id, tutor_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)`,
		slotID, tutorID, startAt, endAt, status)
	require.NoError(t, err)

	return slotID
}

func CreateTestBooking(t *testing.T, db DBLike, slotID, studentID, tutorID uuid.UUID, courseName, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO booking_requests (id, slot_id, student_id, tutor_id, course_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bookingID, slotID, studentID, tutorID, courseName, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestNotification(t *testing.T, db DBLike, recipientID uuid.UUID, eventType, title string, isRead bool) uuid.UUID {
	t.Helper()

	notificationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO notifications (id, recipient_id, event_type, title, message, is_read)
		VALUES ($1, $2, $3, $4, '', $5)`,
		notificationID, recipientID, eventType, title, isRead)
	require.NoError(t, err)

	return notificationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables except the migration bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
