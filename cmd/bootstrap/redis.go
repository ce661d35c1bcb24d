package bootstrap

import (
	"context"
	"log/slog"

	"tutorhub/internal/infra/cache"
	"tutorhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewUnreadCountCache,
	),
)

// NewRedisClient returns nil when no address is configured; the unread cache
// treats a nil client as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Address == "" {
		slog.Info("redis disabled, unread counts served from database")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewUnreadCountCache(client *redis.Client, cfg config.Config) *cache.UnreadCountCache {
	return cache.NewUnreadCountCache(client, cfg.Redis.UnreadTTL)
}
