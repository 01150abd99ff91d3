package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient подмножество команд Redis, используемых хранилищем
// Реализуется *redis.Client
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
