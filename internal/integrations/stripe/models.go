package stripe

// LinkRequest параметры ссылки на оплату депозита
type LinkRequest struct {
	ReservationID int64
	Amount        float64 // в основной валюте (EUR), переводится в центы
	Currency      string
	Description   string
	CustomerEmail string
}

// checkoutSession ответ POST /v1/checkout/sessions
type checkoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ErrorResponse модель ошибки от Stripe
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
