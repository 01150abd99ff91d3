package availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// RatesFeed интерфейс фида тарифов и доступности (PMS)
type RatesFeed interface {
	GetRates(ctx context.Context, start, end types.Date) ([]smoobu.DayRate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
