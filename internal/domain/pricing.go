package domain

import "time"

// PromoType is the kind of promo-code discount
type PromoType string

const (
	PromoPercent PromoType = "percent"
	PromoFixed   PromoType = "fixed"
)

// PricingConfig holds the published rates of the unit
// Tier thresholds (7/14/28 nights) are fixed, tier percentages are configurable
type PricingConfig struct {
	NightlyRate              float64
	CleaningFee              float64
	TouristTaxPerNightGuest  float64
	WeeklyDiscountPercent    float64 // nights >= 7
	FortnightDiscountPercent float64 // nights >= 14
	MonthlyDiscountPercent   float64 // nights >= 28
	MaxGuests                int
}

// PromoDiscount is a promo code validated by the promo service
type PromoDiscount struct {
	Code        string
	Type        PromoType
	Discount    float64
	Description string
	MinNights   *int
	ExpiresAt   *time.Time
}

// PricingResult is the computed price of a stay
// Total = Subtotal - DiscountAmount + CleaningFee + TouristTax
type PricingResult struct {
	NightlyRate      float64
	Nights           int
	Subtotal         float64
	DiscountPercent  float64
	DiscountAmount   float64
	CleaningFee      float64
	TouristTax       float64
	Total            float64
	DepositSuggested float64

	// Promo layer, reported separately from the stay discount
	PromoCode           *string
	PromoType           *PromoType
	PromoDiscountAmount float64
	TotalAfterPromo     float64
}

// HasPromo returns true if a promo code discount was applied
func (p PricingResult) HasPromo() bool {
	return p.PromoCode != nil
}
