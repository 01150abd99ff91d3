package get_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrUpstreamUnavailable возвращается, если фид доступности недоступен
	ErrUpstreamUnavailable = errors.New("get_quote: cannot currently price this stay")
)
