//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotStore struct {
	views      []*queries.SlotView
	gotLimit   int32
	gotAfterAt time.Time
	gotAfterID uuid.UUID
}

func (f *fakeSlotStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeSlotStore) FindByTutorWindow(ctx context.Context, tutorID uuid.UUID, from, to, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*queries.SlotView, error) {
	f.gotLimit = limit
	f.gotAfterAt = afterStart
	f.gotAfterID = afterID
	if int32(len(f.views)) > limit {
		return f.views[:limit], nil
	}
	return f.views, nil
}

func makeSlotViews(n int) []*queries.SlotView {
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	views := make([]*queries.SlotView, n)
	for i := range views {
		views[i] = &queries.SlotView{
			ID:      uuid.New(),
			TutorID: uuid.New(),
			StartAt: base.Add(time.Duration(i) * time.Hour),
			EndAt:   base.Add(time.Duration(i+1) * time.Hour),
			Status:  "open",
		}
	}
	return views
}

func TestListByTutorPagination(t *testing.T) {
	ctx := context.Background()
	tutorID := uuid.New()
	window := 90 * 24 * time.Hour
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full page yields a cursor for the next one", func(t *testing.T) {
		store := &fakeSlotStore{views: makeSlotViews(3)}
		q := queries.NewSlotQueries(store)

		views, next, err := q.ListByTutor(ctx, tutorID, from, from.Add(window), nil, 2)

		require.NoError(t, err)
		assert.Len(t, views, 2)
		require.NotNil(t, next)
		assert.Equal(t, int32(3), store.gotLimit)

		wantAt, wantID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, views[1].StartAt, wantAt)
		assert.Equal(t, views[1].ID, wantID)
	})

	t.Run("short page means the sequence is exhausted", func(t *testing.T) {
		store := &fakeSlotStore{views: makeSlotViews(2)}
		q := queries.NewSlotQueries(store)

		views, next, err := q.ListByTutor(ctx, tutorID, from, from.Add(window), nil, 5)

		require.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded and forwarded to the store", func(t *testing.T) {
		store := &fakeSlotStore{}
		q := queries.NewSlotQueries(store)
		at := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
		id := uuid.New()
		after := &queries.Cursor{After: queries.EncodeAfterCursor(at, id)}

		_, _, err := q.ListByTutor(ctx, tutorID, from, from.Add(window), after, 10)

		require.NoError(t, err)
		assert.Equal(t, at, store.gotAfterAt)
		assert.Equal(t, id, store.gotAfterID)
	})

	t.Run("malformed cursor fails before touching the store", func(t *testing.T) {
		store := &fakeSlotStore{}
		q := queries.NewSlotQueries(store)

		_, _, err := q.ListByTutor(ctx, tutorID, from, from.Add(window), &queries.Cursor{After: "junk"}, 10)

		assert.Error(t, err)
		assert.Zero(t, store.gotLimit)
	})

	t.Run("zero limit falls back to the default page size", func(t *testing.T) {
		store := &fakeSlotStore{views: makeSlotViews(1)}
		q := queries.NewSlotQueries(store)

		_, _, err := q.ListByTutor(ctx, tutorID, from, from.Add(window), nil, 0)

		require.NoError(t, err)
		assert.Equal(t, int32(21), store.gotLimit)
	})
}
