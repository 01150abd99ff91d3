package get_quote

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
