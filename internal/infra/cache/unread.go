package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unreadKeyPrefix = "unread:"

// UnreadCountCache keeps per-recipient unread notification counts in redis
// with a short TTL. A nil client disables caching; callers fall through to
// the database.
type UnreadCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUnreadCountCache(client *redis.Client, ttl time.Duration) *UnreadCountCache {
	return &UnreadCountCache{client: client, ttl: ttl}
}

func (c *UnreadCountCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *UnreadCountCache) Get(ctx context.Context, recipientID uuid.UUID) (int64, bool) {
	if !c.Enabled() {
		return 0, false
	}

	val, err := c.client.Get(ctx, unreadKey(recipientID)).Result()
	if err != nil {
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}

	return count, true
}

func (c *UnreadCountCache) Set(ctx context.Context, recipientID uuid.UUID, count int64) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Set(ctx, unreadKey(recipientID), strconv.FormatInt(count, 10), c.ttl).Err()
}

// Invalidate drops the cached count after any write that changes it.
func (c *UnreadCountCache) Invalidate(ctx context.Context, recipientIDs ...uuid.UUID) error {
	if !c.Enabled() || len(recipientIDs) == 0 {
		return nil
	}

	keys := make([]string, len(recipientIDs))
	for i, id := range recipientIDs {
		keys[i] = unreadKey(id)
	}

	err := c.client.Del(ctx, keys...).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func unreadKey(recipientID uuid.UUID) string {
	return unreadKeyPrefix + recipientID.String()
}
