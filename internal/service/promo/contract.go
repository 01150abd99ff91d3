package promo

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/promoservice"
)

// PromoClient интерфейс клиента сервиса промокодов
type PromoClient interface {
	Validate(ctx context.Context, code string, nights int, total float64) (*promoservice.ValidateResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
