package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/promo"
	"github.com/m04kA/SMC-RentalService/internal/service/selection"
)

// UseCase use case расчета стоимости выбранного проживания
type UseCase struct {
	availability AvailabilityLoader
	days         DayLookup
	pricing      PricingEngine
	promos       PromoValidator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityLoader, days DayLookup, pricing PricingEngine, promos PromoValidator, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		days:         days,
		pricing:      pricing,
		promos:       promos,
		logger:       logger,
	}
}

// Execute считает стоимость проживания
// Отклоненный промокод не ошибка: цена считается без него, причина возвращается в PromoOutcome
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, uc.pricing.Config().MaxGuests); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	if err := uc.availability.EnsureStay(ctx, req.CheckIn, req.CheckOut); err != nil {
		if errors.Is(err, availability.ErrUpstreamUnavailable) {
			uc.logger.Error("GetQuote: availability feed unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result, err := uc.pricing.Calculate(req.CheckIn, req.CheckOut, req.Guests, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{
		Pricing:    result,
		Available:  selection.RangeAvailable(uc.days, req.CheckIn, req.CheckOut),
		MinStayMet: true,
	}

	if day, ok := uc.days.Day(req.CheckIn); ok && day.MinStay != nil {
		resp.MinStay = day.MinStay
		resp.MinStayMet = result.Nights >= *day.MinStay
	}

	if req.PromoCode != nil {
		uc.applyPromo(ctx, req, resp)
	}

	uc.logger.Info("GetQuote: %s..%s guests=%d total=%.2f available=%t",
		req.CheckIn, req.CheckOut, req.Guests, resp.Pricing.TotalAfterPromo, resp.Available)
	return resp, nil
}

func (uc *UseCase) applyPromo(ctx context.Context, req *Request, resp *Response) {
	code := promo.Normalize(*req.PromoCode)
	outcome := &PromoOutcome{Code: code}
	resp.Promo = outcome

	discount, err := uc.promos.Validate(ctx, code, resp.Pricing.Nights, resp.Pricing.Total)
	if err != nil {
		outcome.Reason = promo.Reason(err)
		if !promo.IsRejection(err) {
			uc.logger.Warn("GetQuote: promo code %s not checked: %v", code, err)
		}
		return
	}

	withPromo, err := uc.pricing.Calculate(req.CheckIn, req.CheckOut, req.Guests, discount)
	if err != nil {
		uc.logger.Error("GetQuote: failed to apply promo %s: %v", code, err)
		outcome.Reason = promo.Reason(err)
		return
	}

	resp.Pricing = withPromo
	outcome.Applied = true
}
