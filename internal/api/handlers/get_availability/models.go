package get_availability

import "github.com/m04kA/SMC-RentalService/internal/domain"

// DayResponse HTTP модель дня календаря
type DayResponse struct {
	Date      string   `json:"date"`
	Price     *float64 `json:"price"`
	Available bool     `json:"available"`
	MinStay   *int     `json:"minStay"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Start string        `json:"start"`
	End   string        `json:"end"`
	Days  []DayResponse `json:"days"`
}

// FromDomainDays конвертирует дни в HTTP модель
func FromDomainDays(start, end string, days []domain.AvailabilityDay) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Start: start,
		End:   end,
		Days:  make([]DayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, DayResponse{
			Date:      d.Date.String(),
			Price:     d.Price,
			Available: d.Available,
			MinStay:   d.MinStay,
		})
	}
	return resp
}
