package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ArrivalDate   types.Date `json:"arrivalDate"`   // "2026-08-01"
	DepartureDate types.Date `json:"departureDate"` // "2026-08-08"
	Guests        int        `json:"guests"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Message       *string    `json:"message,omitempty"`
	PromoCode     *string    `json:"promoCode,omitempty"`
	Locale        string     `json:"locale"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64    `json:"id"`
	Status        string   `json:"status"`
	ArrivalDate   string   `json:"arrivalDate"`
	DepartureDate string   `json:"departureDate"`
	Nights        int      `json:"nights"`
	Guests        int      `json:"guests"`
	NightlyRate   float64  `json:"nightlyRate"`
	Subtotal      float64  `json:"subtotal"`
	Discount      float64  `json:"discount"`
	PromoCode     *string  `json:"promoCode,omitempty"`
	PromoDiscount float64  `json:"promoDiscount"`
	CleaningFee   float64  `json:"cleaningFee"`
	TouristTax    float64  `json:"touristTax"`
	Total         float64  `json:"total"`
	AmountDue     float64  `json:"amountDue"`
	DepositAmount float64  `json:"depositAmount"`
	Warnings      []string `json:"warnings"`
	CreatedAt     string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		Guests:        r.Guests,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Message:       r.Message,
		PromoCode:     r.PromoCode,
		Locale:        r.Locale,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		Status:        resp.Status,
		ArrivalDate:   resp.ArrivalDate.String(),
		DepartureDate: resp.DepartureDate.String(),
		Nights:        resp.Nights,
		Guests:        resp.Guests,
		NightlyRate:   resp.Pricing.NightlyRate,
		Subtotal:      resp.Pricing.Subtotal,
		Discount:      resp.Pricing.Discount,
		PromoCode:     resp.Pricing.PromoCode,
		PromoDiscount: resp.Pricing.PromoDiscount,
		CleaningFee:   resp.Pricing.CleaningFee,
		TouristTax:    resp.Pricing.TouristTax,
		Total:         resp.Pricing.Total,
		AmountDue:     resp.Pricing.AmountDue,
		DepositAmount: resp.Pricing.DepositAmount,
		Warnings:      resp.Warnings,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
