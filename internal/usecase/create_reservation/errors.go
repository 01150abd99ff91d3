package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDatesUnavailable возвращается, если хотя бы одна ночь проживания занята
	ErrDatesUnavailable = errors.New("create_reservation: dates are not available")

	// ErrUpstreamUnavailable возвращается, если фид доступности или сервис промокодов недоступен
	ErrUpstreamUnavailable = errors.New("create_reservation: upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
