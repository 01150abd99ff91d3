package session

import (
	"context"
	"time"
)

// Store хранилище времени последней активности сессий
type Store interface {
	// Save сохраняет время последней активности, ttl - срок хранения записи
	Save(ctx context.Context, sessionID string, lastActivity time.Time, ttl time.Duration) error
	// Load возвращает время последней активности; false, если сессии нет
	Load(ctx context.Context, sessionID string) (time.Time, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
