package stripe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "sk_test", "https://rental.example/paid", 2*time.Second, logger.NewWithWriter(io.Discard, "debug"))
}

func TestCreateLink(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "50000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "17", r.PostForm.Get("metadata[reservation_id]"))
		assert.Equal(t, "guest@example.com", r.PostForm.Get("customer_email"))

		_, _ = w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	link, err := client.CreateLink(context.Background(), LinkRequest{
		ReservationID: 17,
		Amount:        500,
		Description:   "Deposit",
		CustomerEmail: "guest@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", link)
}

func TestCreateLink_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"type":"invalid_request_error","message":"bad amount"}}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrInvalidResponse},
		{name: "empty url", status: http.StatusOK, body: `{"id":"cs_1"}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CreateLink(context.Background(), LinkRequest{ReservationID: 1, Amount: 100})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateLink_InvalidAmount(t *testing.T) {
	client := NewClient("http://unused", "sk", "", time.Second, logger.NewWithWriter(io.Discard, "info"))

	_, err := client.CreateLink(context.Background(), LinkRequest{ReservationID: 1, Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(45000), toMinorUnits(450))
	assert.Equal(t, int64(150782), toMinorUnits(1507.82))
	assert.Equal(t, int64(10), toMinorUnits(0.1))
}
