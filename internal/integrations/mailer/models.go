package mailer

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Kind тип письма жизненного цикла бронирования
type Kind string

const (
	KindGuestReceived Kind = "guest_received"
	KindOperatorNew   Kind = "operator_new"
	KindApproved      Kind = "approved"
	KindRejected      Kind = "rejected"
	KindPaid          Kind = "paid"
)

// Settings параметры SMTP
// Пустой Host включает режим заглушки: письма только логируются
type Settings struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromName      string
	OperatorEmail string
	PublicURL     string
}

// templateData данные, доступные шаблонам
type templateData struct {
	R          *domain.Reservation
	ManageURL  string
	PaymentURL string
	AmountDue  string
	Deposit    string
}

type message struct {
	To      string
	Subject string
	Body    string
}
