package authservice

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле оператора
	ErrInvalidCredentials = errors.New("authservice: invalid credentials")

	// ErrInvalidToken возвращается, если bearer токен не прошел проверку (подпись, срок, формат)
	ErrInvalidToken = errors.New("authservice: invalid token")

	// ErrInternal возвращается при внутренних ошибках подписи
	ErrInternal = errors.New("authservice: internal error")
)
