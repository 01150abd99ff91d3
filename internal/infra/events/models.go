package events

import "time"

// payload сообщение о событии жизненного цикла в канале
type payload struct {
	Event       string             `json:"event"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Reservation reservationPayload `json:"reservation"`
}

// reservationPayload снимок бронирования (без токена ссылки)
type reservationPayload struct {
	ID                   int64    `json:"id"`
	Status               string   `json:"status"`
	ArrivalDate          string   `json:"arrivalDate"`
	DepartureDate        string   `json:"departureDate"`
	Nights               int      `json:"nights"`
	Guests               int      `json:"guests"`
	FirstName            string   `json:"firstName"`
	LastName             string   `json:"lastName"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone,omitempty"`
	Total                float64  `json:"total"`
	PromoCode            *string  `json:"promoCode,omitempty"`
	PromoDiscount        float64  `json:"promoDiscount"`
	DepositAmount        float64  `json:"depositAmount"`
	RejectionReason      *string  `json:"rejectionReason,omitempty"`
	StripePaymentLinkURL *string  `json:"stripePaymentLinkUrl,omitempty"`
	SmoobuReservationID  *int64   `json:"smoobuReservationId,omitempty"`
	Locale               string   `json:"locale"`
}
