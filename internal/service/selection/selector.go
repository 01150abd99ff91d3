package selection

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// DayLookup источник данных о доступности по дате (availability.Index)
type DayLookup interface {
	Day(date types.Date) (domain.AvailabilityDay, bool)
}

// OnDayClick переводит клик по дню календаря в новое состояние выбора
//
// Правила (по порядку):
//  1. Недоступный день - клик игнорируется, выбор не меняется.
//  2. Пустой или завершённый выбор - начинается новый с заезда в этот день.
//  3. Выбран только заезд:
//     - день раньше заезда - выбор начинается заново с этого дня;
//     - тот же день - выбор сбрасывается;
//     - день позже заезда - если все ночи [заезд, день) доступны, день становится выездом,
//     иначе выбор начинается заново с этого дня.
//
// Минимальный срок проживания (MinStay) здесь не проверяется.
func OnDayClick(lookup DayLookup, day domain.AvailabilityDay, current domain.DateSelection) domain.DateSelection {
	if !day.Available {
		return current
	}

	if current.CheckIn == nil || current.IsComplete() {
		return startAt(day.Date)
	}

	checkIn := *current.CheckIn

	switch {
	case day.Date.Before(checkIn):
		return startAt(day.Date)
	case day.Date.Equal(checkIn):
		return domain.DateSelection{}
	}

	if !RangeAvailable(lookup, checkIn, day.Date) {
		return startAt(day.Date)
	}

	return domain.DateSelection{
		CheckIn:  ptr.Ptr(checkIn),
		CheckOut: ptr.Ptr(day.Date),
	}
}

// RangeAvailable проверяет, что каждая ночь диапазона [from, to) доступна
// Дата, отсутствующая в индексе, считается недоступной
func RangeAvailable(lookup DayLookup, from, to types.Date) bool {
	nights := types.Nights(from, to)
	if len(nights) == 0 {
		return false
	}

	for _, night := range nights {
		d, ok := lookup.Day(night)
		if !ok || !d.Available {
			return false
		}
	}

	return true
}

// IsValid проверяет инвариант выбора: если обе даты заданы, выезд позже заезда и все ночи доступны
func IsValid(lookup DayLookup, s domain.DateSelection) bool {
	if s.CheckIn == nil {
		return s.CheckOut == nil
	}
	if s.CheckOut == nil {
		return true
	}
	return RangeAvailable(lookup, *s.CheckIn, *s.CheckOut)
}

func startAt(date types.Date) domain.DateSelection {
	return domain.DateSelection{CheckIn: ptr.Ptr(date)}
}
