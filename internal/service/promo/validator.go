package promo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/promoservice"
)

// Validator проверка промокодов через внешний сервис
// Правила живут в сервисе промокодов, здесь только маппинг ответов в типизированные ошибки
type Validator struct {
	client PromoClient
	logger Logger
	now    func() time.Time
}

// NewValidator создает валидатор промокодов
func NewValidator(client PromoClient, logger Logger) *Validator {
	return &Validator{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Normalize приводит код к каноническому виду
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate проверяет промокод для проживания длиной nights на сумму total
func (v *Validator) Validate(ctx context.Context, code string, nights int, total float64) (*domain.PromoDiscount, error) {
	code = Normalize(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidCode)
	}

	resp, err := v.client.Validate(ctx, code, nights, total)
	if err != nil {
		if errors.Is(err, promoservice.ErrCodeNotFound) {
			v.logger.Info("Validate: promo code %s not found", code)
			return nil, fmt.Errorf("%w: %s", ErrInvalidCode, code)
		}
		v.logger.Error("Validate: promo service failed for code %s: %v", code, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if !resp.Valid {
		return nil, rejection(code, resp.Error)
	}

	discount, err := toDomain(code, resp)
	if err != nil {
		v.logger.Error("Validate: malformed promo response for code %s: %v", code, err)
		return nil, err
	}

	// сервис мог закешировать ответ - перепроверяем то, что можно проверить локально
	if discount.ExpiresAt != nil && !v.now().Before(*discount.ExpiresAt) {
		return nil, fmt.Errorf("%w: %s expired at %s", ErrExpired, code, discount.ExpiresAt.Format(time.RFC3339))
	}
	if discount.MinNights != nil && nights < *discount.MinNights {
		return nil, fmt.Errorf("%w: %s requires %d nights, got %d", ErrMinNightsNotMet, code, *discount.MinNights, nights)
	}

	v.logger.Info("Validate: promo code %s accepted (%s %.2f)", code, discount.Type, discount.Discount)
	return discount, nil
}

func rejection(code, reason string) error {
	switch reason {
	case promoservice.ReasonExpired:
		return fmt.Errorf("%w: %s", ErrExpired, code)
	case promoservice.ReasonMinNights:
		return fmt.Errorf("%w: %s", ErrMinNightsNotMet, code)
	default:
		return fmt.Errorf("%w: %s (%s)", ErrInvalidCode, code, reason)
	}
}

func toDomain(code string, resp *promoservice.ValidateResponse) (*domain.PromoDiscount, error) {
	promoType := domain.PromoType(resp.Type)
	switch promoType {
	case domain.PromoPercent:
		if resp.Discount <= 0 || resp.Discount > 100 {
			return nil, fmt.Errorf("%w: percent discount %.2f out of range", ErrUpstreamUnavailable, resp.Discount)
		}
	case domain.PromoFixed:
		if resp.Discount <= 0 {
			return nil, fmt.Errorf("%w: fixed discount %.2f must be positive", ErrUpstreamUnavailable, resp.Discount)
		}
	default:
		return nil, fmt.Errorf("%w: unknown promo type %q", ErrUpstreamUnavailable, resp.Type)
	}

	if resp.Code != "" {
		code = Normalize(resp.Code)
	}

	return &domain.PromoDiscount{
		Code:        code,
		Type:        promoType,
		Discount:    resp.Discount,
		Description: resp.Description,
		MinNights:   resp.MinNights,
		ExpiresAt:   resp.ExpiresAt,
	}, nil
}
