package reservations

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование не найдено
	ErrNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у запроса нет прав на бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (в том числе если статус успел измениться параллельным запросом)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoMappedAction возвращается, когда для колонки канбана нет действия
	ErrNoMappedAction = errors.New("no action mapped to target status")

	// ErrUpstreamUnavailable возвращается, когда обязательный внешний сервис недоступен
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
