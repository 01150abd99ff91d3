package list_reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type stubService struct {
	err        error
	capability domain.Capability
	status     *string
}

func (s *stubService) List(_ context.Context, c domain.Capability, status *string) (*models.ReservationListResponse, error) {
	s.capability, s.status = c, status
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1}, {ID: 2}}}, nil
}

func do(svc *stubService, capability domain.Capability, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "debug"))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithCapability(req.Context(), capability))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_List(t *testing.T) {
	svc := &stubService{}

	rec := do(svc, domain.FullAccess(), "/reservations?status=pending")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.status)
	assert.Equal(t, "pending", *svc.status)
	assert.True(t, svc.capability.IsFull())

	var resp models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reservations, 2)
}

func TestHandle_NoStatusFilter(t *testing.T) {
	svc := &stubService{}

	rec := do(svc, domain.FullAccess(), "/reservations")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		loginRequired bool
	}{
		{name: "denied asks for login", err: reservations.ErrAccessDenied, wantStatus: http.StatusUnauthorized, loginRequired: true},
		{name: "bad status", err: fmt.Errorf("%w: archived", reservations.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&stubService{err: tt.err}, domain.Denied(), "/reservations?status=archived")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.loginRequired, resp.LoginRequired)
			assert.NotEmpty(t, resp.Error)
		})
	}
}
