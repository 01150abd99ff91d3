package validate_promo

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/promo"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указан промокод или количество ночей"
	msgPromoUnavailable   = "сервис промокодов временно недоступен"
)

type Handler struct {
	validator PromoValidator
	logger    Logger
}

func NewHandler(validator PromoValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/promo-codes/validate
// Отклоненный промокод - 200 с valid=false, недоступность сервиса - 503
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo-codes/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Nights <= 0 || req.Total < 0 {
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	discount, err := h.validator.Validate(r.Context(), req.Code, req.Nights, req.Total)
	if err != nil {
		if promo.IsRejection(err) {
			h.logger.Info("POST /promo-codes/validate - Code rejected: %v", err)
			handlers.RespondJSON(w, http.StatusOK, &ValidateResponse{
				Valid:  false,
				Code:   promo.Normalize(req.Code),
				Reason: promo.Reason(err),
			})
			return
		}
		h.logger.Error("POST /promo-codes/validate - Promo service unavailable: %v", err)
		handlers.RespondUnavailable(w, msgPromoUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainPromo(discount))
}
