package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// MaxRangeDays максимальная длина запрашиваемого диапазона
const MaxRangeDays = 366

// Window календарный месяц (или его часть), запрашиваемый у фида одним вызовом
type Window struct {
	Start types.Date
	End   types.Date // включительно
}

// Service загрузка доступности из фида и слияние в индекс
type Service struct {
	feed   RatesFeed
	index  *Index
	logger Logger
}

// NewService создает сервис доступности
func NewService(feed RatesFeed, index *Index, logger Logger) *Service {
	return &Service{
		feed:   feed,
		index:  index,
		logger: logger,
	}
}

// Index возвращает индекс доступности (используется выбором дат)
func (s *Service) Index() *Index {
	return s.index
}

// Load запрашивает у фида диапазон [start, end] помесячно и сливает ответы в индекс
// Окна запрашиваются последовательно, результаты применяются в порядке поступления
func (s *Service) Load(ctx context.Context, start, end types.Date) ([]domain.AvailabilityDay, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidRange, start, end)
	}
	if start.DaysUntil(end) > MaxRangeDays {
		return nil, fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, MaxRangeDays)
	}

	windows := MonthWindows(start, end)
	s.logger.Info("Load: fetching availability %s..%s in %d window(s)", start, end, len(windows))

	for _, w := range windows {
		rates, err := s.feed.GetRates(ctx, w.Start, w.End)
		if err != nil {
			s.logger.Error("Load: rates feed failed for window %s..%s: %v", w.Start, w.End, err)
			return nil, fmt.Errorf("%w: window %s..%s: %v", ErrUpstreamUnavailable, w.Start, w.End, err)
		}

		s.index.Merge(toDomainDays(rates))
	}

	return s.index.Range(start, end), nil
}

// EnsureStay загружает доступность для ночей проживания [checkIn, checkOut)
func (s *Service) EnsureStay(ctx context.Context, checkIn, checkOut types.Date) error {
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRange)
	}

	_, err := s.Load(ctx, checkIn, checkOut.AddDays(-1))
	return err
}

// MonthWindows разбивает [start, end] на окна по календарным месяцам
func MonthWindows(start, end types.Date) []Window {
	windows := make([]Window, 0)
	if end.Before(start) {
		return windows
	}

	for cur := start; !cur.After(end); {
		last := cur.LastOfMonth()
		if last.After(end) {
			last = end
		}
		windows = append(windows, Window{Start: cur, End: last})
		cur = last.AddDays(1)
	}

	return windows
}

func toDomainDays(rates []smoobu.DayRate) []domain.AvailabilityDay {
	days := make([]domain.AvailabilityDay, 0, len(rates))
	for _, r := range rates {
		days = append(days, domain.AvailabilityDay{
			Date:      r.Date,
			Price:     r.Price,
			Available: r.Available == 1,
			MinStay:   r.MinLengthOfStay,
		})
	}
	return days
}
