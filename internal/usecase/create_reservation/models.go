package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модель запроса гостя на бронирование
type Request struct {
	ArrivalDate   types.Date
	DepartureDate types.Date
	Guests        int `validate:"min=1"`

	FirstName string  `validate:"required,max=100"`
	LastName  string  `validate:"required,max=100"`
	Email     string  `validate:"required,email,max=254"`
	Phone     string  `validate:"omitempty,min=5,max=32"`
	Message   *string `validate:"omitempty,max=2000"`

	PromoCode *string // Промокод (опционально)
	Locale    string  `validate:"required,locale"`
}

// Response модель ответа с созданным бронированием
// Токен ссылки не возвращается: гость получает его только в письме
type Response struct {
	ID            int64
	Status        string
	ArrivalDate   types.Date
	DepartureDate types.Date
	Nights        int
	Guests        int

	Pricing PricingSnapshot

	Warnings  []string
	CreatedAt time.Time
}

// PricingSnapshot зафиксированная на момент отправки стоимость
type PricingSnapshot struct {
	NightlyRate   float64
	Subtotal      float64
	Discount      float64
	PromoCode     *string
	PromoDiscount float64
	CleaningFee   float64
	TouristTax    float64
	Total         float64
	AmountDue     float64
	DepositAmount float64
}
