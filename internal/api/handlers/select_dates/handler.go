package select_dates

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDateRequired       = "не указана дата"
	msgInvalidSelection   = "текущий выбор дат некорректен"
)

type Handler struct {
	days   DayLookup
	logger Logger
}

func NewHandler(days DayLookup, logger Logger) *Handler {
	return &Handler{
		days:   days,
		logger: logger,
	}
}

// Handle POST /api/v1/selection/click
// Дни, которых нет в индексе (не загружены из фида), считаются недоступными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/click - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date.IsZero() {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	current := req.ToDomainSelection()
	if !selection.IsValid(h.days, current) {
		h.logger.Warn("POST /selection/click - Invalid current selection")
		handlers.RespondBadRequest(w, msgInvalidSelection)
		return
	}

	day, ok := h.days.Day(req.Date)
	if !ok {
		day = domain.AvailabilityDay{Date: req.Date, Available: false}
	}

	next := selection.OnDayClick(h.days, day, current)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSelection(next))
}
