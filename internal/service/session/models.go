package session

import "time"

// ActivityEvent событие пользовательской активности в админке
type ActivityEvent string

const (
	EventPointerDown ActivityEvent = "pointerdown"
	EventKeyDown     ActivityEvent = "keydown"
	EventScroll      ActivityEvent = "scroll"
	EventTouchStart  ActivityEvent = "touchstart"
)

// State состояние сессии оператора
type State string

const (
	StateActive  State = "active"
	StateWarning State = "warning"
	StateExpired State = "expired"
)

// Status снимок состояния сессии
type Status struct {
	State        State
	Remaining    time.Duration
	LastActivity time.Time
}

// IsActivity true для событий, которые сбрасывают таймер бездействия
func (e ActivityEvent) IsActivity() bool {
	switch e {
	case EventPointerDown, EventKeyDown, EventScroll, EventTouchStart:
		return true
	default:
		return false
	}
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
