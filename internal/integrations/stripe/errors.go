package stripe

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe
	ErrInvalidResponse = errors.New("stripe client: invalid response")

	// ErrUnauthorized возвращается, когда Stripe отклонил секретный ключ
	ErrUnauthorized = errors.New("stripe client: unauthorized")

	// ErrInvalidAmount возвращается при попытке создать ссылку на неположительную сумму
	ErrInvalidAmount = errors.New("stripe client: invalid amount")
)
