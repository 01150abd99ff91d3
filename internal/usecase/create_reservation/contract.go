package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// AvailabilityLoader загрузка доступности ночей проживания в индекс
type AvailabilityLoader interface {
	EnsureStay(ctx context.Context, checkIn, checkOut types.Date) error
}

// DayLookup доступность по дате (availability.Index)
type DayLookup interface {
	Day(date types.Date) (domain.AvailabilityDay, bool)
}

// PricingEngine расчет стоимости проживания
type PricingEngine interface {
	Calculate(checkIn, checkOut types.Date, guests int, promo *domain.PromoDiscount) (domain.PricingResult, error)
	Config() domain.PricingConfig
}

// PromoValidator проверка промокодов
type PromoValidator interface {
	Validate(ctx context.Context, code string, nights int, total float64) (*domain.PromoDiscount, error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Notify(ctx context.Context, kind mailer.Kind, r *domain.Reservation) error
}

// EventPublisher интерфейс публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
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
