package smoobu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret", 42, 7, 2*time.Second, logger.NewWithWriter(io.Discard, "debug"))
}

func TestGetRates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rates", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Api-Key"))
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("end_date"))
		assert.Equal(t, "42", r.URL.Query().Get("apartments[]"))

		_, _ = w.Write([]byte(`{"data":{"42":{
			"2026-08-02":{"price":260,"min_length_of_stay":3,"available":0},
			"2026-08-01":{"price":250,"min_length_of_stay":2,"available":1},
			"2026-08-03":{"price":null,"min_length_of_stay":null,"available":1}
		}}}`))
	})

	rates, err := client.GetRates(context.Background(), types.MustParseDate("2026-08-01"), types.MustParseDate("2026-08-31"))
	require.NoError(t, err)
	require.Len(t, rates, 3)

	assert.Equal(t, "2026-08-01", rates[0].Date.String())
	assert.Equal(t, 250.0, *rates[0].Price)
	assert.Equal(t, 1, rates[0].Available)
	assert.Equal(t, 2, *rates[0].MinLengthOfStay)

	assert.Equal(t, "2026-08-02", rates[1].Date.String())
	assert.Equal(t, 0, rates[1].Available)

	assert.Nil(t, rates[2].Price)
	assert.Nil(t, rates[2].MinLengthOfStay)
}

func TestGetRates_NoApartmentData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	rates, err := client.GetRates(context.Background(), types.MustParseDate("2026-08-01"), types.MustParseDate("2026-08-31"))
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestGetRates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
		{name: "bad json", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
		{name: "bad date key", status: http.StatusOK, body: `{"data":{"42":{"01/08/2026":{"available":1}}}}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetRates(context.Background(), types.MustParseDate("2026-08-01"), types.MustParseDate("2026-08-31"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlockDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations", r.URL.Path)

		var body createReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-08-01", body.ArrivalDate)
		assert.Equal(t, "2026-08-08", body.DepartureDate)
		assert.Equal(t, int64(42), body.ApartmentID)
		assert.Equal(t, int64(7), body.ChannelID)
		assert.Equal(t, 2, body.Adults)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 991}`))
	})

	id, err := client.BlockDates(context.Background(), BlockRequest{
		ArrivalDate:   types.MustParseDate("2026-08-01"),
		DepartureDate: types.MustParseDate("2026-08-08"),
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Guests:        2,
		Price:         1665.32,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(991), id)
}

func TestBlockDates_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := client.BlockDates(context.Background(), BlockRequest{
		ArrivalDate:   types.MustParseDate("2026-08-01"),
		DepartureDate: types.MustParseDate("2026-08-08"),
	})
	assert.ErrorIs(t, err, ErrDatesNotAvailable)
}
