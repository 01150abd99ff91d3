package reservation_actions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронирование не найдено"
	msgLoginRequired        = "требуется вход оператора или ссылка из письма"
	msgInvalidTransition    = "действие недоступно для текущего статуса бронирования"
	msgNoMappedAction       = "перенос в эту колонку не поддерживается"
	msgInvalidInput         = "некорректные данные действия"
	msgUpstream             = "платежный сервис временно недоступен, попробуйте позже"
)

// Handler действия оператора над бронированием
// Все действия разделяют маппинг ошибок машины состояний
type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Approve POST /api/v1/reservations/{reservationId}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "POST /reservations/{id}/approve"

	id, ok := h.reservationID(w, r, op)
	if !ok {
		return
	}

	var req ApproveRequest
	if !h.decodeOptional(w, r, op, &req) {
		return
	}

	result, err := h.service.Approve(r.Context(), middleware.GetCapability(r.Context()), id, req.DepositAmount)
	h.respond(w, op, id, result, err)
}

// Reject POST /api/v1/reservations/{reservationId}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	const op = "POST /reservations/{id}/reject"

	id, ok := h.reservationID(w, r, op)
	if !ok {
		return
	}

	var req RejectRequest
	if !h.decodeOptional(w, r, op, &req) {
		return
	}

	result, err := h.service.Reject(r.Context(), middleware.GetCapability(r.Context()), id, req.RejectionReason)
	h.respond(w, op, id, result, err)
}

// MarkPaid POST /api/v1/reservations/{reservationId}/mark-paid
func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	const op = "POST /reservations/{id}/mark-paid"

	id, ok := h.reservationID(w, r, op)
	if !ok {
		return
	}

	result, err := h.service.MarkPaid(r.Context(), middleware.GetCapability(r.Context()), id)
	h.respond(w, op, id, result, err)
}

// ResendPayment POST /api/v1/reservations/{reservationId}/resend-payment
func (h *Handler) ResendPayment(w http.ResponseWriter, r *http.Request) {
	const op = "POST /reservations/{id}/resend-payment"

	id, ok := h.reservationID(w, r, op)
	if !ok {
		return
	}

	result, err := h.service.ResendPayment(r.Context(), middleware.GetCapability(r.Context()), id)
	h.respond(w, op, id, result, err)
}

// UpdateStatus PATCH /api/v1/reservations/{reservationId}/status (перенос на канбан-доске)
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "PATCH /reservations/{id}/status"

	id, ok := h.reservationID(w, r, op)
	if !ok {
		return
	}

	var req models.TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RequestTransition(r.Context(), middleware.GetCapability(r.Context()), id, &req)
	h.respond(w, op, id, result, err)
}

func (h *Handler) reservationID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid reservation ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return 0, false
	}
	return id, true
}

// decodeOptional пустое тело допустимо
func (h *Handler) decodeOptional(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, op string, id int64, result *models.TransitionResult, err error) {
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: reservation_id=%d", op, id)
			handlers.RespondUnauthorized(w, msgLoginRequired)

		case errors.Is(err, reservations.ErrNotFound):
			h.logger.Warn("%s - Reservation not found: reservation_id=%d", op, id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrNoMappedAction):
			h.logger.Warn("%s - No mapped action: reservation_id=%d", op, id)
			handlers.RespondConflict(w, msgNoMappedAction)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("%s - Invalid transition: reservation_id=%d: %v", op, id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: reservation_id=%d: %v", op, id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrUpstreamUnavailable):
			h.logger.Error("%s - Upstream unavailable: reservation_id=%d: %v", op, id, err)
			handlers.RespondUnavailable(w, msgUpstream)

		default:
			h.logger.Error("%s - Failed: reservation_id=%d, error=%v", op, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if len(result.Warnings) > 0 {
		h.logger.Warn("%s - Done with warnings: reservation_id=%d, warnings=%v", op, id, result.Warnings)
	} else {
		h.logger.Info("%s - Done: reservation_id=%d, changed=%t", op, id, result.Changed)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
