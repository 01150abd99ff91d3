package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

const (
	msgInvalidStart    = "некорректная дата start, ожидается YYYY-MM-DD"
	msgInvalidEnd      = "некорректная дата end, ожидается YYYY-MM-DD"
	msgInvalidRange    = "некорректный диапазон дат"
	msgFeedUnavailable = "календарь временно недоступен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := types.ParseDate(query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	end, err := types.ParseDate(query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	days, err := h.service.Load(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrUpstreamUnavailable):
			h.logger.Error("GET /availability - Feed unavailable: %v", err)
			handlers.RespondUnavailable(w, msgFeedUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to load availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d day(s) for %s..%s", len(days), start, end)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDays(start.String(), end.String(), days))
}
