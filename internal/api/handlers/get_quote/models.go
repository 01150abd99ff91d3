package get_quote

import (
	getQuote "github.com/m04kA/SMC-RentalService/internal/usecase/get_quote"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CheckIn   types.Date `json:"checkIn"`
	CheckOut  types.Date `json:"checkOut"`
	Guests    int        `json:"guests"`
	PromoCode *string    `json:"promoCode,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`

	NightlyRate      float64 `json:"nightlyRate"`
	Nights           int     `json:"nights"`
	Subtotal         float64 `json:"subtotal"`
	DiscountPercent  float64 `json:"discountPercent"`
	DiscountAmount   float64 `json:"discountAmount"`
	CleaningFee      float64 `json:"cleaningFee"`
	TouristTax       float64 `json:"touristTax"`
	Total            float64 `json:"total"`
	DepositSuggested float64 `json:"depositSuggested"`

	Promo               *PromoResponse `json:"promo,omitempty"`
	PromoDiscountAmount float64        `json:"promoDiscountAmount"`
	TotalAfterPromo     float64        `json:"totalAfterPromo"`

	MinStay    *int `json:"minStay,omitempty"`
	MinStayMet bool `json:"minStayMet"`
}

// PromoResponse результат применения промокода
type PromoResponse struct {
	Code    string  `json:"code"`
	Applied bool    `json:"applied"`
	Type    *string `json:"type,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *getQuote.Request {
	return &getQuote.Request{
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Guests:    r.Guests,
		PromoCode: r.PromoCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *QuoteRequest, resp *getQuote.Response) *QuoteResponse {
	p := resp.Pricing
	out := &QuoteResponse{
		CheckIn:             req.CheckIn.String(),
		CheckOut:            req.CheckOut.String(),
		Available:           resp.Available,
		NightlyRate:         p.NightlyRate,
		Nights:              p.Nights,
		Subtotal:            p.Subtotal,
		DiscountPercent:     p.DiscountPercent,
		DiscountAmount:      p.DiscountAmount,
		CleaningFee:         p.CleaningFee,
		TouristTax:          p.TouristTax,
		Total:               p.Total,
		DepositSuggested:    p.DepositSuggested,
		PromoDiscountAmount: p.PromoDiscountAmount,
		TotalAfterPromo:     p.TotalAfterPromo,
		MinStay:             resp.MinStay,
		MinStayMet:          resp.MinStayMet,
	}

	if resp.Promo != nil {
		out.Promo = &PromoResponse{
			Code:    resp.Promo.Code,
			Applied: resp.Promo.Applied,
			Reason:  resp.Promo.Reason,
		}
		if p.PromoType != nil {
			t := string(*p.PromoType)
			out.Promo.Type = &t
		}
	}

	return out
}
