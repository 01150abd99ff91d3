package domain

import "time"

// Default pricing values
const (
	DefaultNightlyRate              = 250.0
	DefaultCleaningFee              = 50.0
	DefaultTouristTaxPerNightGuest  = 2.88
	DefaultWeeklyDiscountPercent    = 10.0
	DefaultFortnightDiscountPercent = 15.0
	DefaultMonthlyDiscountPercent   = 20.0
	DefaultMaxGuests                = 6
)

// Stay-length discount tiers (nights)
const (
	WeeklyTierNights    = 7
	FortnightTierNights = 14
	MonthlyTierNights   = 28
)

// Deposit suggestion
const (
	DepositRatio   = 0.30
	DepositStep    = 50.0
	DepositMinimum = 100.0
)

// Admin session
const (
	DefaultSessionTimeout = 10 * time.Minute
	DefaultSessionWarning = 1 * time.Minute
)

// Business validation constants
const (
	MaxMessageLength         = 2000
	MaxRejectionReasonLength = 500
	MaxStayNights            = 365
)

// Supported guest locales
var SupportedLocales = []string{"en", "fr", "de", "es", "it"}

// AllStatuses lists every reservation status
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusPaid,
	StatusCancelled,
}

// DefaultPricingConfig returns the pricing config with default values
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		NightlyRate:              DefaultNightlyRate,
		CleaningFee:              DefaultCleaningFee,
		TouristTaxPerNightGuest:  DefaultTouristTaxPerNightGuest,
		WeeklyDiscountPercent:    DefaultWeeklyDiscountPercent,
		FortnightDiscountPercent: DefaultFortnightDiscountPercent,
		MonthlyDiscountPercent:   DefaultMonthlyDiscountPercent,
		MaxGuests:                DefaultMaxGuests,
	}
}
