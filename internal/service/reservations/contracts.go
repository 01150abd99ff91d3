package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/internal/integrations/stripe"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) error
	SetSmoobuReservationID(ctx context.Context, id int64, smoobuID int64) error
}

// PaymentLinkProvider интерфейс провайдера ссылок на оплату
type PaymentLinkProvider interface {
	CreateLink(ctx context.Context, link stripe.LinkRequest) (string, error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Notify(ctx context.Context, kind mailer.Kind, r *domain.Reservation) error
}

// CalendarBlocker интерфейс блокировки дат в PMS
type CalendarBlocker interface {
	BlockDates(ctx context.Context, block smoobu.BlockRequest) (int64, error)
}

// EventPublisher интерфейс публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncTransition(action, result string)
	IncUpstreamError(upstream string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
