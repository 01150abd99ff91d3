package promo

import "errors"

var (
	// ErrInvalidCode возвращается для неизвестного или неактивного промокода
	ErrInvalidCode = errors.New("promo: invalid code")

	// ErrExpired возвращается для промокода с истекшим сроком действия
	ErrExpired = errors.New("promo: code expired")

	// ErrMinNightsNotMet возвращается, если проживание короче минимального для промокода
	ErrMinNightsNotMet = errors.New("promo: minimum nights not met")

	// ErrUpstreamUnavailable возвращается, если сервис промокодов недоступен или ответил мусором
	ErrUpstreamUnavailable = errors.New("promo: promo service unavailable")
)

// Reason машинно-читаемая причина отказа для ответа API
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCode):
		return "invalid_code"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrMinNightsNotMet):
		return "min_nights_not_met"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}

// IsRejection true, если промокод отклонен по бизнес-правилам (а не из-за недоступности сервиса)
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidCode) || errors.Is(err, ErrExpired) || errors.Is(err, ErrMinNightsNotMet)
}
