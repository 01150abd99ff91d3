package availability

import (
	"sort"
	"sync"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Index снимок доступности, собранный из последовательных ответов фида тарифов
// Повторные данные по той же дате перезаписывают предыдущие (last-write-wins)
type Index struct {
	mu   sync.RWMutex
	days map[types.Date]domain.AvailabilityDay
}

// NewIndex создает пустой индекс
func NewIndex() *Index {
	return &Index{days: make(map[types.Date]domain.AvailabilityDay)}
}

// Merge сливает результат очередного запроса в индекс
// Вызовы применяются в порядке их поступления, более поздний перезаписывает более ранний
func (i *Index) Merge(days []domain.AvailabilityDay) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		i.days[d.Date] = d
	}
}

// Day возвращает день по дате
func (i *Index) Day(date types.Date) (domain.AvailabilityDay, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	d, ok := i.days[date]
	return d, ok
}

// Range возвращает известные дни из [from, to] (включительно), отсортированные по дате
func (i *Index) Range(from, to types.Date) []domain.AvailabilityDay {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make([]domain.AvailabilityDay, 0)
	for date, d := range i.days {
		if date.Before(from) || date.After(to) {
			continue
		}
		result = append(result, d)
	}

	sort.Slice(result, func(a, b int) bool {
		return result[a].Date.Before(result[b].Date)
	})

	return result
}

// Covers проверяет, что в индексе есть данные по каждой дате [from, to]
func (i *Index) Covers(from, to types.Date) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for d := from; !d.After(to); d = d.AddDays(1) {
		if _, ok := i.days[d]; !ok {
			return false
		}
	}
	return true
}

// Len количество дней в индексе
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.days)
}
