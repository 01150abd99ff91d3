package validate_promo

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type PromoValidator interface {
	Validate(ctx context.Context, code string, nights int, total float64) (*domain.PromoDiscount, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
