package select_dates

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// ClickRequest клик по дню календаря с текущим состоянием выбора
type ClickRequest struct {
	Date     types.Date  `json:"date"`
	CheckIn  *types.Date `json:"checkIn,omitempty"`
	CheckOut *types.Date `json:"checkOut,omitempty"`
}

// SelectionResponse новое состояние выбора
type SelectionResponse struct {
	CheckIn  *types.Date `json:"checkIn"`
	CheckOut *types.Date `json:"checkOut"`
	Nights   int         `json:"nights"`
	Complete bool        `json:"complete"`
}

// ToDomainSelection текущий выбор из запроса
func (r *ClickRequest) ToDomainSelection() domain.DateSelection {
	return domain.DateSelection{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// FromDomainSelection конвертирует выбор в HTTP модель
func FromDomainSelection(s domain.DateSelection) *SelectionResponse {
	return &SelectionResponse{
		CheckIn:  s.CheckIn,
		CheckOut: s.CheckOut,
		Nights:   s.Nights(),
		Complete: s.IsComplete(),
	}
}
