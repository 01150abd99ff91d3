package get_quote

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модель запроса на расчет стоимости
type Request struct {
	CheckIn   types.Date
	CheckOut  types.Date
	Guests    int
	PromoCode *string // Промокод (опционально)
}

// Response модель ответа с расчетом
type Response struct {
	Pricing   domain.PricingResult
	Available bool // Все ночи [CheckIn, CheckOut) свободны

	Promo *PromoOutcome // nil, если промокод не передавался

	// Минимальный срок проживания из фида для дня заезда - только рекомендация
	MinStay    *int
	MinStayMet bool
}

// PromoOutcome результат проверки промокода
type PromoOutcome struct {
	Code    string
	Applied bool
	Reason  string // invalid_code | expired | min_nights_not_met | unavailable
}
