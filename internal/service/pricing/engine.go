package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Engine расчёт стоимости проживания
// Чистая функция от конфигурации и входных данных: без I/O, без случайности
type Engine struct {
	cfg domain.PricingConfig
}

// NewEngine создает движок расчёта цены
func NewEngine(cfg domain.PricingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config возвращает опубликованные тарифы
func (e *Engine) Config() domain.PricingConfig {
	return e.cfg
}

// Calculate считает стоимость проживания [checkIn, checkOut) для guests гостей
// Если promo != nil, поверх скидки за длительность применяется скидка промокода,
// которая учитывается отдельно (PromoDiscountAmount / TotalAfterPromo)
func (e *Engine) Calculate(checkIn, checkOut types.Date, guests int, promo *domain.PromoDiscount) (domain.PricingResult, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return domain.PricingResult{}, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return domain.PricingResult{}, fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}
	if guests < 1 {
		return domain.PricingResult{}, fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	discountPercent := e.DiscountPercent(nights)
	subtotal := e.cfg.NightlyRate * float64(nights)
	discountAmount := roundHalfUp(subtotal * discountPercent / 100)
	touristTax := round2(e.cfg.TouristTaxPerNightGuest * float64(nights) * float64(guests))
	total := subtotal - discountAmount + e.cfg.CleaningFee + touristTax

	result := domain.PricingResult{
		NightlyRate:     e.cfg.NightlyRate,
		Nights:          nights,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		CleaningFee:     e.cfg.CleaningFee,
		TouristTax:      touristTax,
		Total:           total,
		TotalAfterPromo: total,
	}

	if promo != nil {
		promoAmount := PromoAmount(subtotal-discountAmount, promo)
		result.PromoCode = ptr.Ptr(promo.Code)
		result.PromoType = ptr.Ptr(promo.Type)
		result.PromoDiscountAmount = promoAmount
		result.TotalAfterPromo = round2(total - promoAmount)
	}

	// депозит считается от суммы без промокода
	result.DepositSuggested = SuggestDeposit(result.Total)

	return result, nil
}

// DiscountPercent скидка за длительность проживания
// Уровни проверяются от старшего к младшему и не суммируются
func (e *Engine) DiscountPercent(nights int) float64 {
	switch {
	case nights >= domain.MonthlyTierNights:
		return e.cfg.MonthlyDiscountPercent
	case nights >= domain.FortnightTierNights:
		return e.cfg.FortnightDiscountPercent
	case nights >= domain.WeeklyTierNights:
		return e.cfg.WeeklyDiscountPercent
	default:
		return 0
	}
}

// PromoAmount сумма скидки промокода от базы (цена проживания после скидки за длительность)
// percent - процент от базы, fixed - фиксированная сумма; итоговая база не уходит ниже нуля
func PromoAmount(base float64, promo *domain.PromoDiscount) float64 {
	if promo == nil || base <= 0 || promo.Discount <= 0 {
		return 0
	}

	var amount float64
	switch promo.Type {
	case domain.PromoPercent:
		amount = round2(base * promo.Discount / 100)
	case domain.PromoFixed:
		amount = promo.Discount
	default:
		return 0
	}

	return math.Min(amount, base)
}

// SuggestDeposit предлагаемый депозит: 30% от суммы, округлённые до ближайших 50, но не меньше 100
// Ровно посередине округляется вверх
func SuggestDeposit(total float64) float64 {
	rounded := roundHalfUp(total*domain.DepositRatio/domain.DepositStep) * domain.DepositStep
	return math.Max(domain.DepositMinimum, rounded)
}

// epsilon компенсирует погрешность двоичного представления (2.675 -> 2.67499...)
const epsilon = 1e-9

// roundHalfUp округление до целых, половина вверх
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5 + epsilon)
}

// round2 округление до сотых, половина вверх
func round2(v float64) float64 {
	return math.Floor(v*100+0.5+epsilon) / 100
}
