package validate_promo

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	Code   string  `json:"code"`
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// ValidateResponse HTTP response model
// При отказе valid=false и reason: invalid_code | expired | min_nights_not_met
type ValidateResponse struct {
	Valid       bool       `json:"valid"`
	Code        string     `json:"code"`
	Type        string     `json:"type,omitempty"`
	Discount    float64    `json:"discount,omitempty"`
	Description string     `json:"description,omitempty"`
	MinNights   *int       `json:"minNights,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// FromDomainPromo конвертирует принятый промокод в HTTP модель
func FromDomainPromo(p *domain.PromoDiscount) *ValidateResponse {
	return &ValidateResponse{
		Valid:       true,
		Code:        p.Code,
		Type:        string(p.Type),
		Discount:    p.Discount,
		Description: p.Description,
		MinNights:   p.MinNights,
		ExpiresAt:   p.ExpiresAt,
	}
}
