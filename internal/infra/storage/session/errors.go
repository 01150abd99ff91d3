package session

import "errors"

var (
	// ErrRedis возвращается при ошибках выполнения команд Redis
	ErrRedis = errors.New("session.store: redis error")

	// ErrCorruptedValue возвращается, если значение в Redis не является временем
	ErrCorruptedValue = errors.New("session.store: corrupted value")
)
