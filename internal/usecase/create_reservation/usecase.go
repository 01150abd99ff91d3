package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/promo"
	"github.com/m04kA/SMC-RentalService/internal/service/selection"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Тексты предупреждений о сбоях побочных эффектов
const (
	warnGuestEmailFailed    = "confirmation email could not be sent"
	warnOperatorEmailFailed = "operator notification could not be sent"
	warnEventFailed         = "lifecycle event could not be published"
)

// UseCase use case отправки гостем запроса на бронирование
type UseCase struct {
	reservationRepo ReservationRepository
	availability    AvailabilityLoader
	days            DayLookup
	pricing         PricingEngine
	promos          PromoValidator
	notifier        Notifier
	events          EventPublisher
	timeProvider    TimeProvider
	validate        *validator.Validate
	newToken        func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	availability AvailabilityLoader,
	days DayLookup,
	pricing PricingEngine,
	promos PromoValidator,
	notifier Notifier,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		availability:    availability,
		days:            days,
		pricing:         pricing,
		promos:          promos,
		notifier:        notifier,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		validate:        newValidator(),
		newToken:        uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateReservation: %s..%s, guests=%d, email=%s",
		req.ArrivalDate, req.DepartureDate, req.Guests, req.Email)

	// 1. Валидация до любых сетевых вызовов
	now := uc.timeProvider.Now()
	if err := validateRequest(uc.validate, req, uc.pricing.Config().MaxGuests, types.DateOf(now)); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Актуальная доступность из фида
	if err := uc.availability.EnsureStay(ctx, req.ArrivalDate, req.DepartureDate); err != nil {
		if errors.Is(err, availability.ErrUpstreamUnavailable) {
			uc.logger.Error("CreateReservation: availability feed unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		uc.logger.Warn("CreateReservation: bad stay range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Все ночи [заезд, выезд) должны быть свободны
	if !selection.RangeAvailable(uc.days, req.ArrivalDate, req.DepartureDate) {
		uc.logger.Warn("CreateReservation: dates %s..%s are not available", req.ArrivalDate, req.DepartureDate)
		return nil, fmt.Errorf("%w: %s..%s", ErrDatesUnavailable, req.ArrivalDate, req.DepartureDate)
	}

	// 4. Расчет стоимости (с промокодом, если указан)
	pricing, err := uc.price(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Сохраняем бронирование в статусе pending
	reservation := &domain.Reservation{
		Token:         uc.newToken(),
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		Nights:        pricing.Nights,
		Guests:        req.Guests,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		NightlyRate:   pricing.NightlyRate,
		Subtotal:      pricing.Subtotal,
		Discount:      pricing.DiscountAmount,
		PromoCode:     pricing.PromoCode,
		PromoDiscount: pricing.PromoDiscountAmount,
		CleaningFee:   pricing.CleaningFee,
		TouristTax:    pricing.TouristTax,
		Total:         pricing.Total,
		DepositAmount: pricing.DepositSuggested,
		Status:        domain.StatusPending,
		Locale:        req.Locale,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to save reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to save reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: reservation id=%d created, total=%.2f, deposit=%.2f",
		created.ID, created.AmountDue(), created.DepositAmount)

	// 6. Побочные эффекты: ошибки не отменяют создание
	warnings := uc.sideEffects(ctx, created)

	return toResponse(created, warnings), nil
}

// price считает стоимость и применяет промокод поверх скидки за длительность
func (uc *UseCase) price(ctx context.Context, req *Request) (domain.PricingResult, error) {
	base, err := uc.pricing.Calculate(req.ArrivalDate, req.DepartureDate, req.Guests, nil)
	if err != nil {
		uc.logger.Warn("CreateReservation: pricing failed: %v", err)
		return domain.PricingResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.PromoCode == nil {
		return base, nil
	}

	discount, err := uc.promos.Validate(ctx, *req.PromoCode, base.Nights, base.Total)
	if err != nil {
		if promo.IsRejection(err) {
			uc.logger.Warn("CreateReservation: promo code rejected: %v", err)
			return domain.PricingResult{}, err
		}
		uc.logger.Error("CreateReservation: promo validation unavailable: %v", err)
		return domain.PricingResult{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	withPromo, err := uc.pricing.Calculate(req.ArrivalDate, req.DepartureDate, req.Guests, discount)
	if err != nil {
		return domain.PricingResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return withPromo, nil
}

func (uc *UseCase) sideEffects(ctx context.Context, r *domain.Reservation) []string {
	warnings := make([]string, 0)

	event := domain.NewReservationEvent(domain.EventCreated, r, uc.timeProvider.Now())
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateReservation: reservation id=%d: failed to publish event: %v", r.ID, err)
		warnings = append(warnings, warnEventFailed)
	}

	if err := uc.notifier.Notify(ctx, mailer.KindGuestReceived, r); err != nil {
		uc.logger.Warn("CreateReservation: reservation id=%d: failed to email guest: %v", r.ID, err)
		warnings = append(warnings, warnGuestEmailFailed)
	}

	if err := uc.notifier.Notify(ctx, mailer.KindOperatorNew, r); err != nil {
		uc.logger.Warn("CreateReservation: reservation id=%d: failed to notify operator: %v", r.ID, err)
		warnings = append(warnings, warnOperatorEmailFailed)
	}

	return warnings
}

func toResponse(r *domain.Reservation, warnings []string) *Response {
	return &Response{
		ID:            r.ID,
		Status:        string(r.Status),
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		Nights:        r.Nights,
		Guests:        r.Guests,
		Pricing: PricingSnapshot{
			NightlyRate:   r.NightlyRate,
			Subtotal:      r.Subtotal,
			Discount:      r.Discount,
			PromoCode:     r.PromoCode,
			PromoDiscount: r.PromoDiscount,
			CleaningFee:   r.CleaningFee,
			TouristTax:    r.TouristTax,
			Total:         r.Total,
			AmountDue:     r.AmountDue(),
			DepositAmount: r.DepositAmount,
		},
		Warnings:  warnings,
		CreatedAt: r.CreatedAt,
	}
}
