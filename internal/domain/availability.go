package domain

import "github.com/m04kA/SMC-RentalService/pkg/types"

// AvailabilityDay is one calendar day as reported by the rates feed
type AvailabilityDay struct {
	Date      types.Date
	Price     *float64
	Available bool
	MinStay   *int
}

// DateSelection is the guest's in-progress date range selection
// If both ends are set, CheckOut is after CheckIn and every night in [CheckIn, CheckOut) is available
type DateSelection struct {
	CheckIn  *types.Date
	CheckOut *types.Date
}

// IsEmpty returns true if nothing is selected
func (s DateSelection) IsEmpty() bool {
	return s.CheckIn == nil && s.CheckOut == nil
}

// IsComplete returns true if both check-in and check-out are set
func (s DateSelection) IsComplete() bool {
	return s.CheckIn != nil && s.CheckOut != nil
}

// Nights returns the number of nights in a complete selection, 0 otherwise
func (s DateSelection) Nights() int {
	if !s.IsComplete() {
		return 0
	}
	return s.CheckIn.DaysUntil(*s.CheckOut)
}
