//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutorhub/internal/infra/cache"
	"tutorhub/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationStore struct {
	count      int64
	countErr   error
	countCalls int
}

func (f *fakeNotificationStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, beforeCreatedAt time.Time, beforeID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotificationStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	f.countCalls++
	return f.count, f.countErr
}

func TestUnreadCountReadThrough(t *testing.T) {
	ctx := context.Background()

	newCache := func(t *testing.T) *cache.UnreadCountCache {
		t.Helper()
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return cache.NewUnreadCountCache(client, time.Minute)
	}

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		store := &fakeNotificationStore{count: 4}
		q := queries.NewNotificationQueries(store, newCache(t))
		recipientID := uuid.New()

		count, err := q.UnreadCount(ctx, recipientID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = q.UnreadCount(ctx, recipientID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.Equal(t, 1, store.countCalls)
	})

	t.Run("store error propagates", func(t *testing.T) {
		store := &fakeNotificationStore{countErr: errors.New("boom")}
		q := queries.NewNotificationQueries(store, newCache(t))

		_, err := q.UnreadCount(ctx, uuid.New())
		assert.Error(t, err)
	})

	t.Run("disabled cache still counts from the store", func(t *testing.T) {
		store := &fakeNotificationStore{count: 2}
		q := queries.NewNotificationQueries(store, cache.NewUnreadCountCache(nil, time.Minute))
		recipientID := uuid.New()

		count, err := q.UnreadCount(ctx, recipientID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		_, err = q.UnreadCount(ctx, recipientID)
		require.NoError(t, err)
		assert.Equal(t, 2, store.countCalls)
	})
}
