package availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrUpstreamUnavailable возвращается, когда фид тарифов недоступен
	ErrUpstreamUnavailable = errors.New("availability: rates feed unavailable")
)
