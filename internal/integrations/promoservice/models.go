package promoservice

import "time"

// Коды отказа, которые возвращает сервис промокодов
const (
	ReasonInvalid    = "invalid"
	ReasonExpired    = "expired"
	ReasonMinNights  = "min_nights"
	ReasonInactive   = "inactive"
	ReasonUsageLimit = "usage_limit"
)

// ValidateRequest тело запроса проверки промокода
type ValidateRequest struct {
	Code   string  `json:"code"`
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// ValidateResponse ответ сервиса промокодов
type ValidateResponse struct {
	Valid       bool       `json:"valid"`
	Code        string     `json:"code"`
	Type        string     `json:"type"` // percent | fixed
	Discount    float64    `json:"discount"`
	Description string     `json:"description"`
	MinNights   *int       `json:"min_nights,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}
