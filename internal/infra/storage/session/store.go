package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "admin_session:"

// Store хранилище сессий оператора в Redis
// Значение - время последней активности в unix-наносекундах, TTL ограничивает жизнь брошенных сессий
type Store struct {
	client RedisClient
}

// NewStore создает хранилище сессий
func NewStore(client RedisClient) *Store {
	return &Store{client: client}
}

// Save сохраняет время последней активности
func (s *Store) Save(ctx context.Context, sessionID string, lastActivity time.Time, ttl time.Duration) error {
	value := strconv.FormatInt(lastActivity.UnixNano(), 10)
	if err := s.client.Set(ctx, key(sessionID), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrRedis, err)
	}
	return nil
}

// Load возвращает время последней активности
func (s *Store) Load(ctx context.Context, sessionID string) (time.Time, bool, error) {
	value, err := s.client.Get(ctx, key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: Load - get: %v", ErrRedis, err)
	}

	nanos, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrCorruptedValue, value)
	}

	return time.Unix(0, nanos), true, nil
}

// Delete удаляет сессию
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrRedis, err)
	}
	return nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
