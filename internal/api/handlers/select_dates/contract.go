package select_dates

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// DayLookup доступность по дате из индекса
type DayLookup interface {
	Day(date types.Date) (domain.AvailabilityDay, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
