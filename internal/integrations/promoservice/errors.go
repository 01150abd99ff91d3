package promoservice

import "errors"

var (
	// ErrCodeNotFound возвращается, когда промокод неизвестен сервису
	ErrCodeNotFound = errors.New("promo code not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("promoservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("promoservice client: invalid response")
)
