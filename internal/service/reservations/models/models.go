package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// TransitionRequest перенос карточки на доске канбан
type TransitionRequest struct {
	Target          string   `json:"status"`
	DepositAmount   *float64 `json:"depositAmount,omitempty"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
// Токен ссылки в ответ никогда не попадает
type ReservationResponse struct {
	ID            int64  `json:"id"`
	ArrivalDate   string `json:"arrivalDate"`   // "2026-08-01"
	DepartureDate string `json:"departureDate"` // "2026-08-08"
	Nights        int    `json:"nights"`
	Guests        int    `json:"guests"`

	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`

	NightlyRate   float64 `json:"nightlyRate"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	PromoCode     *string `json:"promoCode,omitempty"`
	PromoDiscount float64 `json:"promoDiscount"`
	CleaningFee   float64 `json:"cleaningFee"`
	TouristTax    float64 `json:"touristTax"`
	Total         float64 `json:"total"`
	AmountDue     float64 `json:"amountDue"`
	DepositAmount float64 `json:"depositAmount"`

	Status               string  `json:"status"`
	RejectionReason      *string `json:"rejectionReason,omitempty"`
	StripePaymentLinkURL *string `json:"stripePaymentLinkUrl,omitempty"`
	SmoobuReservationID  *int64  `json:"smoobuReservationId,omitempty"`

	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// TransitionResult результат перехода статуса
// Warnings - сбои побочных эффектов (письма, PMS), сам переход при этом выполнен
type TransitionResult struct {
	Reservation *ReservationResponse `json:"reservation"`
	Warnings    []string             `json:"warnings"`
	Changed     bool                 `json:"changed"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                   r.ID,
		ArrivalDate:          r.ArrivalDate.String(),
		DepartureDate:        r.DepartureDate.String(),
		Nights:               r.Nights,
		Guests:               r.Guests,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Email:                r.Email,
		Phone:                r.Phone,
		Message:              r.Message,
		NightlyRate:          r.NightlyRate,
		Subtotal:             r.Subtotal,
		Discount:             r.Discount,
		PromoCode:            r.PromoCode,
		PromoDiscount:        r.PromoDiscount,
		CleaningFee:          r.CleaningFee,
		TouristTax:           r.TouristTax,
		Total:                r.Total,
		AmountDue:            r.AmountDue(),
		DepositAmount:        r.DepositAmount,
		Status:               string(r.Status),
		RejectionReason:      r.RejectionReason,
		StripePaymentLinkURL: r.StripePaymentLinkURL,
		SmoobuReservationID:  r.SmoobuReservationID,
		Locale:               r.Locale,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
