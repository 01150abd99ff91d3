package create_reservation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/promo"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type stubUseCase struct {
	req  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.req = req
	return s.resp, s.err
}

const body = `{
	"arrivalDate": "2026-08-01",
	"departureDate": "2026-08-08",
	"guests": 2,
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@example.com",
	"promoCode": "SUMMER10",
	"locale": "en"
}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{
		ID:        3,
		Status:    "pending",
		Nights:    7,
		Warnings:  []string{},
		CreatedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "debug"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2026-08-01", uc.req.ArrivalDate.String())
	assert.Equal(t, "SUMMER10", *uc.req.PromoCode)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: createReservation.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "dates taken", err: createReservation.ErrDatesUnavailable, status: http.StatusConflict},
		{name: "promo expired", err: fmt.Errorf("%w: OLD", promo.ErrExpired), status: http.StatusBadRequest},
		{name: "feed down", err: createReservation.ErrUpstreamUnavailable, status: http.StatusServiceUnavailable},
		{name: "internal", err: createReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewWithWriter(io.Discard, "debug"))

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_UnknownField(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.NewWithWriter(io.Discard, "debug"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(`{"status":"paid"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
