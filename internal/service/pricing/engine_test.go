package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

func testConfig() domain.PricingConfig {
	return domain.PricingConfig{
		NightlyRate:              250,
		CleaningFee:              50,
		TouristTaxPerNightGuest:  2.88,
		WeeklyDiscountPercent:    10,
		FortnightDiscountPercent: 15,
		MonthlyDiscountPercent:   20,
		MaxGuests:                6,
	}
}

var checkIn = types.MustParseDate("2026-07-01")

func TestCalculate_WeekScenario(t *testing.T) {
	engine := NewEngine(testConfig())

	result, err := engine.Calculate(checkIn, checkIn.AddDays(7), 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Nights)
	assert.Equal(t, 250.0, result.NightlyRate)
	assert.Equal(t, 1750.0, result.Subtotal)
	assert.Equal(t, 10.0, result.DiscountPercent)
	assert.Equal(t, 175.0, result.DiscountAmount)
	assert.Equal(t, 50.0, result.CleaningFee)
	assert.InDelta(t, 40.32, result.TouristTax, 1e-9)
	assert.InDelta(t, 1665.32, result.Total, 1e-9)
	assert.Equal(t, 500.0, result.DepositSuggested)

	assert.False(t, result.HasPromo())
	assert.Equal(t, result.Total, result.TotalAfterPromo)
	assert.Zero(t, result.PromoDiscountAmount)
}

func TestDiscountPercent_TierBoundaries(t *testing.T) {
	engine := NewEngine(testConfig())

	tests := []struct {
		nights   int
		expected float64
	}{
		{nights: 1, expected: 0},
		{nights: 6, expected: 0},
		{nights: 7, expected: 10},
		{nights: 13, expected: 10},
		{nights: 14, expected: 15},
		{nights: 27, expected: 15},
		{nights: 28, expected: 20},
		{nights: 90, expected: 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, engine.DiscountPercent(tt.nights), "nights=%d", tt.nights)

		result, err := engine.Calculate(checkIn, checkIn.AddDays(tt.nights), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result.DiscountPercent, "nights=%d", tt.nights)
	}
}

func TestCalculate_TotalIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.NightlyRate = 187.35
	cfg.TouristTaxPerNightGuest = 1.65
	engine := NewEngine(cfg)

	for nights := 1; nights <= 40; nights++ {
		for guests := 1; guests <= cfg.MaxGuests; guests++ {
			result, err := engine.Calculate(checkIn, checkIn.AddDays(nights), guests, nil)
			require.NoError(t, err)

			expected := result.Subtotal - result.DiscountAmount + result.CleaningFee + result.TouristTax
			assert.Equal(t, expected, result.Total, "nights=%d guests=%d", nights, guests)
			assert.Equal(t, math.Floor(result.DiscountAmount), result.DiscountAmount, "discount is whole units")
		}
	}
}

func TestSuggestDeposit(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expected float64
	}{
		{name: "zero total uses floor", total: 0, expected: 100},
		{name: "small total uses floor", total: 200, expected: 100},
		{name: "rounds down", total: 1000, expected: 300},
		{name: "rounds up", total: 1665.32, expected: 500},
		{name: "tie rounds up", total: 250, expected: 100},
		{name: "exact tie above floor", total: 1250, expected: 400},
		{name: "large", total: 10000, expected: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestDeposit(tt.total))
		})
	}
}

func TestSuggestDeposit_AlwaysMultipleOf50AndAtLeast100(t *testing.T) {
	for total := 0.0; total < 20000; total += 13.37 {
		deposit := SuggestDeposit(total)
		assert.GreaterOrEqual(t, deposit, 100.0, "total=%.2f", total)
		assert.Zero(t, math.Mod(deposit, 50), "total=%.2f", total)
	}
}

func TestCalculate_PromoLayer(t *testing.T) {
	engine := NewEngine(testConfig())

	t.Run("percent promo on post-stay-discount price", func(t *testing.T) {
		promo := &domain.PromoDiscount{Code: "SUMMER10", Type: domain.PromoPercent, Discount: 10}

		result, err := engine.Calculate(checkIn, checkIn.AddDays(7), 2, promo)
		require.NoError(t, err)

		// стоимость и скидка за длительность не меняются
		assert.Equal(t, 175.0, result.DiscountAmount)
		assert.InDelta(t, 1665.32, result.Total, 1e-9)

		require.True(t, result.HasPromo())
		assert.Equal(t, "SUMMER10", *result.PromoCode)
		assert.Equal(t, domain.PromoPercent, *result.PromoType)
		assert.Equal(t, 157.5, result.PromoDiscountAmount)
		assert.InDelta(t, 1507.82, result.TotalAfterPromo, 1e-9)
		assert.Equal(t, 500.0, result.DepositSuggested)
	})

	t.Run("fixed promo subtracts flat amount", func(t *testing.T) {
		promo := &domain.PromoDiscount{Code: "WELCOME50", Type: domain.PromoFixed, Discount: 50}

		result, err := engine.Calculate(checkIn, checkIn.AddDays(3), 2, promo)
		require.NoError(t, err)

		assert.Equal(t, 50.0, result.PromoDiscountAmount)
		assert.InDelta(t, result.Total-50, result.TotalAfterPromo, 1e-9)
	})

	t.Run("fixed promo is floored at zero", func(t *testing.T) {
		promo := &domain.PromoDiscount{Code: "FREE", Type: domain.PromoFixed, Discount: 5000}

		result, err := engine.Calculate(checkIn, checkIn.AddDays(7), 2, promo)
		require.NoError(t, err)

		// скидка не больше цены проживания, сборы и налог остаются
		assert.Equal(t, 1575.0, result.PromoDiscountAmount)
		assert.InDelta(t, 90.32, result.TotalAfterPromo, 1e-9)
		assert.Equal(t, 500.0, result.DepositSuggested)
	})
}

func TestCalculate_DepositIgnoresPromo(t *testing.T) {
	engine := NewEngine(testConfig())
	promo := &domain.PromoDiscount{Code: "MINUS200", Type: domain.PromoFixed, Discount: 200}

	result, err := engine.Calculate(checkIn, checkIn.AddDays(7), 2, promo)
	require.NoError(t, err)

	assert.InDelta(t, 1665.32, result.Total, 1e-9)
	assert.InDelta(t, 1465.32, result.TotalAfterPromo, 1e-9)
	// 30% от 1465.32 округлилось бы до 450
	assert.Equal(t, 500.0, result.DepositSuggested)
	assert.Equal(t, SuggestDeposit(result.Total), result.DepositSuggested)

	withoutPromo, err := engine.Calculate(checkIn, checkIn.AddDays(7), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, withoutPromo.DepositSuggested, result.DepositSuggested)
}

func TestCalculate_InvalidInput(t *testing.T) {
	engine := NewEngine(testConfig())

	tests := []struct {
		name     string
		checkIn  types.Date
		checkOut types.Date
		guests   int
	}{
		{name: "same day", checkIn: checkIn, checkOut: checkIn, guests: 2},
		{name: "checkout before checkin", checkIn: checkIn, checkOut: checkIn.AddDays(-2), guests: 2},
		{name: "zero guests", checkIn: checkIn, checkOut: checkIn.AddDays(2), guests: 0},
		{name: "missing dates", checkIn: types.Date{}, checkOut: checkIn, guests: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Calculate(tt.checkIn, tt.checkOut, tt.guests, nil)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
