package events

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher подмножество команд Redis для публикации
// Реализуется *redis.Client
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
