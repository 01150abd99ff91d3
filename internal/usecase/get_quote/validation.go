package get_quote

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxGuests int) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	if nights := req.CheckIn.DaysUntil(req.CheckOut); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay of %d nights exceeds %d", ErrInvalidInput, nights, domain.MaxStayNights)
	}

	if req.Guests < 1 || (maxGuests > 0 && req.Guests > maxGuests) {
		return fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, maxGuests)
	}

	if req.PromoCode != nil && strings.TrimSpace(*req.PromoCode) == "" {
		req.PromoCode = nil
	}

	return nil
}
