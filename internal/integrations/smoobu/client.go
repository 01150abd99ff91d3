package smoobu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Client клиент для работы с PMS Smoobu (тарифы, доступность, блокировка дат)
type Client struct {
	baseURL     string
	apiKey      string
	apartmentID int64
	channelID   int64
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Smoobu
func NewClient(baseURL, apiKey string, apartmentID, channelID int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		apartmentID: apartmentID,
		channelID:   channelID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRates получает тарифы и доступность за период [start, end]
func (c *Client) GetRates(ctx context.Context, start, end types.Date) ([]DayRate, error) {
	params := url.Values{}
	params.Set("start_date", start.String())
	params.Set("end_date", end.String())
	params.Add("apartments[]", strconv.FormatInt(c.apartmentID, 10))

	endpoint := fmt.Sprintf("%s/api/rates?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	entries, ok := body.Data[strconv.FormatInt(c.apartmentID, 10)]
	if !ok {
		// по апартаменту нет данных - PMS ничего не знает об этих датах
		c.log.Warn("GetRates: no data for apartment id=%d in %s..%s", c.apartmentID, start, end)
		return []DayRate{}, nil
	}

	rates := make([]DayRate, 0, len(entries))
	for dateStr, entry := range entries {
		date, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date key %q: %v", ErrInvalidResponse, dateStr, err)
		}
		rates = append(rates, DayRate{
			Date:            date,
			Price:           entry.Price,
			Available:       entry.Available,
			MinLengthOfStay: entry.MinLengthOfStay,
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Date.Before(rates[j].Date)
	})

	return rates, nil
}

// BlockDates создает бронирование в PMS, блокируя даты в календаре
// Возвращает ID бронирования в PMS
func (c *Client) BlockDates(ctx context.Context, block BlockRequest) (int64, error) {
	payload, err := json.Marshal(createReservationRequest{
		ArrivalDate:   block.ArrivalDate.String(),
		DepartureDate: block.DepartureDate.String(),
		ApartmentID:   c.apartmentID,
		ChannelID:     c.channelID,
		FirstName:     block.FirstName,
		LastName:      block.LastName,
		Email:         block.Email,
		Phone:         block.Phone,
		Adults:        block.Guests,
		Price:         block.Price,
		PriceStatus:   1, // оплачено
		Notice:        block.Notice,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/api/reservations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, err
	}

	var created createReservationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("BlockDates: blocked %s..%s, smoobu reservation id=%d",
		block.ArrivalDate, block.DepartureDate, created.ID)
	return created.ID, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
}

// checkStatus обработка статус-кодов
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrDatesNotAvailable
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("%w: %s", ErrInvalidResponse, errResp.Detail)
		}
		return fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
