package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SlotQueries interface {
	// ListByTutor pages through a tutor's slots inside [from, to), ordered by
	// start ascending. The returned cursor restarts the sequence where the
	// previous page ended; nil means the sequence is exhausted.
	ListByTutor(ctx context.Context, tutorID uuid.UUID, from, to time.Time, after *Cursor, limit int) ([]*SlotView, *Cursor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByTutorWindow(ctx context.Context, tutorID uuid.UUID, from, to time.Time, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) ListByTutor(ctx context.Context, tutorID uuid.UUID, from, to time.Time, after *Cursor, limit int) ([]*SlotView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		afterStart time.Time
		afterID    uuid.UUID
	)
	if after != nil && after.After != "" {
		var err error
		afterStart, afterID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
	}

	// Fetch one extra row to know whether another page exists.
	rows, err := q.store.FindByTutorWindow(ctx, tutorID, from, to, afterStart, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
	}

	return rows, next, nil
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.store.FindByID(ctx, id)
}
