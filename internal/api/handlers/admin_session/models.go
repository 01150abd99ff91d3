package admin_session

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/service/session"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expiresAt"`
	TimeoutSeconds int       `json:"timeoutSeconds"`
}

// ActivityRequest событие активности в админке
type ActivityRequest struct {
	Event string `json:"event"` // pointerdown | keydown | scroll | touchstart
}

// SessionResponse состояние сессии
// В состоянии warning клиент показывает обратный отсчет с кнопкой продления
type SessionResponse struct {
	State            string    `json:"state"`
	RemainingSeconds int       `json:"remainingSeconds"`
	LastActivity     time.Time `json:"lastActivity"`
}

// FromSessionStatus конвертирует статус сессии в HTTP модель
func FromSessionStatus(s *session.Status) *SessionResponse {
	remaining := int(s.Remaining.Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return &SessionResponse{
		State:            string(s.State),
		RemainingSeconds: remaining,
		LastActivity:     s.LastActivity,
	}
}
