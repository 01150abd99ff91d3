package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultCurrency = "eur"

// Client клиент для создания ссылок на оплату (Stripe Checkout)
type Client struct {
	baseURL    string
	secretKey  string
	successURL string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(baseURL, secretKey, successURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		successURL: successURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateLink создает Checkout Session на сумму депозита и возвращает URL оплаты
func (c *Client) CreateLink(ctx context.Context, link LinkRequest) (string, error) {
	if link.Amount <= 0 {
		return "", fmt.Errorf("%w: %.2f", ErrInvalidAmount, link.Amount)
	}

	currency := strings.ToLower(link.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	reservationID := strconv.FormatInt(link.ReservationID, 10)
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.successURL)
	form.Set("client_reference_id", reservationID)
	form.Set("metadata[reservation_id]", reservationID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(toMinorUnits(link.Amount), 10))
	form.Set("line_items[0][price_data][product_data][name]", link.Description)
	if link.CustomerEmail != "" {
		form.Set("customer_email", link.CustomerEmail)
	}

	endpoint := fmt.Sprintf("%s/v1/checkout/sessions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrUnauthorized
	case http.StatusBadRequest, http.StatusPaymentRequired:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidResponse, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var session checkoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("%w: empty checkout url", ErrInvalidResponse)
	}

	c.log.Info("CreateLink: checkout session %s for reservation id=%d, amount=%.2f %s",
		session.ID, link.ReservationID, link.Amount, currency)
	return session.URL, nil
}

// toMinorUnits переводит сумму в центы
func toMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}
