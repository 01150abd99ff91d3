package smoobu

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smoobu client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от PMS
	ErrInvalidResponse = errors.New("smoobu client: invalid response")

	// ErrUnauthorized возвращается, когда PMS отклонил API ключ
	ErrUnauthorized = errors.New("smoobu client: unauthorized")

	// ErrDatesNotAvailable возвращается, когда PMS отказался блокировать даты (уже заняты)
	ErrDatesNotAvailable = errors.New("smoobu client: dates not available")
)
