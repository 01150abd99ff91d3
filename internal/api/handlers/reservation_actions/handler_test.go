package reservation_actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type stubService struct {
	err        error
	result     *models.TransitionResult
	capability domain.Capability
	deposit    *float64
	reason     *string
	transition *models.TransitionRequest
	called     string
}

func (s *stubService) outcome() (*models.TransitionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &models.TransitionResult{Reservation: &models.ReservationResponse{ID: 7}, Warnings: []string{}, Changed: true}, nil
}

func (s *stubService) Approve(_ context.Context, c domain.Capability, _ int64, deposit *float64) (*models.TransitionResult, error) {
	s.called, s.capability, s.deposit = "approve", c, deposit
	return s.outcome()
}

func (s *stubService) Reject(_ context.Context, c domain.Capability, _ int64, reason *string) (*models.TransitionResult, error) {
	s.called, s.capability, s.reason = "reject", c, reason
	return s.outcome()
}

func (s *stubService) MarkPaid(_ context.Context, c domain.Capability, _ int64) (*models.TransitionResult, error) {
	s.called, s.capability = "mark_paid", c
	return s.outcome()
}

func (s *stubService) ResendPayment(_ context.Context, c domain.Capability, _ int64) (*models.TransitionResult, error) {
	s.called, s.capability = "resend_payment", c
	return s.outcome()
}

func (s *stubService) RequestTransition(_ context.Context, c domain.Capability, _ int64, req *models.TransitionRequest) (*models.TransitionResult, error) {
	s.called, s.capability, s.transition = "transition", c, req
	return s.outcome()
}

func newRouter(svc *stubService, capability domain.Capability) *mux.Router {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "debug"))

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithCapability(req.Context(), capability)))
		})
	})
	r.HandleFunc("/reservations/{reservationId}/approve", h.Approve).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}/reject", h.Reject).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}/mark-paid", h.MarkPaid).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}/resend-payment", h.ResendPayment).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}/status", h.UpdateStatus).Methods(http.MethodPatch)
	return r
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func TestApprove_PassesDepositAndCapability(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc, domain.SingleReservationAccess(7))

	rec := do(router, http.MethodPost, "/reservations/7/approve", `{"depositAmount": 400}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "approve", svc.called)
	require.NotNil(t, svc.deposit)
	assert.Equal(t, 400.0, *svc.deposit)
	assert.True(t, svc.capability.Allows(7))

	var body models.TransitionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Changed)
}

func TestActions_EmptyBodyAllowed(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc, domain.FullAccess())

	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/reservations/7/approve", "").Code)
	assert.Nil(t, svc.deposit)

	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/reservations/7/reject", "").Code)
	assert.Nil(t, svc.reason)

	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/reservations/7/mark-paid", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/reservations/7/resend-payment", "").Code)
}

func TestUpdateStatus_KanbanDrop(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc, domain.FullAccess())

	rec := do(router, http.MethodPatch, "/reservations/7/status", `{"status":"rejected","rejectionReason":"Dates held for owner"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.transition)
	assert.Equal(t, "rejected", svc.transition.Target)
	assert.Equal(t, "Dates held for owner", *svc.transition.RejectionReason)

	rec = do(router, http.MethodPatch, "/reservations/7/status", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActions_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		status        int
		loginRequired bool
	}{
		{name: "denied", err: reservations.ErrAccessDenied, status: http.StatusUnauthorized, loginRequired: true},
		{name: "not found", err: reservations.ErrNotFound, status: http.StatusNotFound},
		{name: "invalid transition", err: fmt.Errorf("%w: approved -> approve", reservations.ErrInvalidTransition), status: http.StatusConflict},
		{name: "no mapped action", err: reservations.ErrNoMappedAction, status: http.StatusConflict},
		{name: "invalid input", err: reservations.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "upstream", err: reservations.ErrUpstreamUnavailable, status: http.StatusServiceUnavailable},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubService{err: tt.err}, domain.FullAccess())

			rec := do(router, http.MethodPost, "/reservations/7/mark-paid", "")
			assert.Equal(t, tt.status, rec.Code)

			var body struct {
				Error         string `json:"error"`
				LoginRequired bool   `json:"loginRequired"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.loginRequired, body.LoginRequired)
		})
	}
}

func TestActions_BadReservationID(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc, domain.FullAccess())

	rec := do(router, http.MethodPost, "/reservations/abc/approve", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.called)
}

func TestActions_WarningsReturnedWith200(t *testing.T) {
	svc := &stubService{result: &models.TransitionResult{
		Reservation: &models.ReservationResponse{ID: 7, Status: "paid"},
		Warnings:    []string{"dates could not be blocked in the property calendar"},
		Changed:     true,
	}}
	router := newRouter(svc, domain.FullAccess())

	rec := do(router, http.MethodPost, "/reservations/7/mark-paid", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "property calendar")
}
