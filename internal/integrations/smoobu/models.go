package smoobu

import "github.com/m04kA/SMC-RentalService/pkg/types"

// DayRate тариф и доступность на одну дату
type DayRate struct {
	Date            types.Date
	Price           *float64
	Available       int // 0 | 1
	MinLengthOfStay *int
}

// rateEntry элемент ответа /api/rates
type rateEntry struct {
	Price           *float64 `json:"price"`
	MinLengthOfStay *int     `json:"min_length_of_stay"`
	Available       int      `json:"available"`
}

// ratesResponse ответ /api/rates: data[apartmentId][date]
type ratesResponse struct {
	Data map[string]map[string]rateEntry `json:"data"`
}

// BlockRequest запрос на блокировку дат в PMS (создание бронирования)
type BlockRequest struct {
	ArrivalDate   types.Date
	DepartureDate types.Date
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Guests        int
	Price         float64
	Notice        string
}

type createReservationRequest struct {
	ArrivalDate   string  `json:"arrivalDate"`
	DepartureDate string  `json:"departureDate"`
	ApartmentID   int64   `json:"apartmentId"`
	ChannelID     int64   `json:"channelId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	Adults        int     `json:"adults"`
	Price         float64 `json:"price"`
	PriceStatus   int     `json:"priceStatus"`
	Notice        string  `json:"notice,omitempty"`
}

type createReservationResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse модель ошибки от PMS
type ErrorResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
