package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// newValidator создает валидатор с правилом locale
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "locale", validLocale)
	return v
}

// mustRegister регистрирует правило; ошибка означает некорректное имя или функцию
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("create_reservation: register validation %q: %v", tag, err))
	}
}

func validLocale(fl validator.FieldLevel) bool {
	locale := fl.Field().String()
	for _, supported := range domain.SupportedLocales {
		if locale == supported {
			return true
		}
	}
	return false
}

// normalizeRequest убирает пробелы по краям строковых полей
func normalizeRequest(req *Request) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Locale = strings.ToLower(strings.TrimSpace(req.Locale))

	if req.Message != nil {
		msg := strings.TrimSpace(*req.Message)
		if msg == "" {
			req.Message = nil
		} else {
			req.Message = &msg
		}
	}
	if req.PromoCode != nil && strings.TrimSpace(*req.PromoCode) == "" {
		req.PromoCode = nil
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(v *validator.Validate, req *Request, maxGuests int, today types.Date) error {
	if err := v.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed rule %s", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if maxGuests > 0 && req.Guests > maxGuests {
		return fmt.Errorf("%w: guests must be at most %d", ErrInvalidInput, maxGuests)
	}

	return validateStay(req.ArrivalDate, req.DepartureDate, today)
}

// validateStay проверяет даты проживания
func validateStay(arrival, departure, today types.Date) error {
	if arrival.IsZero() || departure.IsZero() {
		return fmt.Errorf("%w: arrivalDate and departureDate are required", ErrInvalidInput)
	}

	if !departure.After(arrival) {
		return fmt.Errorf("%w: departureDate must be after arrivalDate", ErrInvalidInput)
	}

	if arrival.Before(today) {
		return fmt.Errorf("%w: arrivalDate %s is in the past", ErrInvalidInput, arrival)
	}

	if nights := arrival.DaysUntil(departure); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay of %d nights exceeds %d", ErrInvalidInput, nights, domain.MaxStayNights)
	}

	return nil
}
