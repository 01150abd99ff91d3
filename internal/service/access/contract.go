package access

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// TokenRepository доступ к секрету ссылки бронирования
type TokenRepository interface {
	GetToken(ctx context.Context, reservationID int64) (string, error)
}

// TokenVerifier проверка bearer токена оператора
type TokenVerifier interface {
	Verify(token string) (*authservice.Claims, error)
}

// SessionChecker проверка, что сессия оператора жива
type SessionChecker interface {
	IsLive(ctx context.Context, sessionID string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
