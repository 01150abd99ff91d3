package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/promo"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDatesUnavailable   = "выбранные даты уже заняты"
	msgUpstream           = "сейчас невозможно рассчитать стоимость проживания, попробуйте позже"
	msgPromoInvalid       = "промокод недействителен"
	msgPromoExpired       = "срок действия промокода истек"
	msgPromoMinNights     = "промокод требует более длительного проживания"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrDatesUnavailable):
			h.logger.Warn("POST /reservations - Dates unavailable: %s..%s", req.ArrivalDate, req.DepartureDate)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, promo.ErrInvalidCode):
			handlers.RespondBadRequest(w, msgPromoInvalid)

		case errors.Is(err, promo.ErrExpired):
			handlers.RespondBadRequest(w, msgPromoExpired)

		case errors.Is(err, promo.ErrMinNightsNotMet):
			handlers.RespondBadRequest(w, msgPromoMinNights)

		case errors.Is(err, createReservation.ErrUpstreamUnavailable):
			h.logger.Error("POST /reservations - Upstream unavailable: %v", err)
			handlers.RespondUnavailable(w, msgUpstream)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
