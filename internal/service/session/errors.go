package session

import "errors"

var (
	// ErrSessionNotFound возвращается, если сессия не инициализирована или уже завершена
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired возвращается при обращении к сессии после таймаута бездействия
	ErrSessionExpired = errors.New("session: expired")

	// ErrIgnoredEvent возвращается для событий, которые не считаются активностью
	ErrIgnoredEvent = errors.New("session: event does not count as activity")

	// ErrStore возвращается при ошибках хранилища сессий
	ErrStore = errors.New("session: store error")
)
