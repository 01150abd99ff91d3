package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (даты, количество гостей)
	ErrInvalidInput = errors.New("pricing: invalid input")
)
