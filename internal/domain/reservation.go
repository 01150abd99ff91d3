package domain

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusPaid      ReservationStatus = "paid"
	StatusCancelled ReservationStatus = "cancelled"
)

// Action is an operator action driving the reservation lifecycle
type Action string

const (
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionMarkPaid      Action = "mark_paid"
	ActionResendPayment Action = "resend_payment"
)

// transitions is the legal-transition table: action -> (required source status, resulting status)
var transitions = map[Action]struct {
	From ReservationStatus
	To   ReservationStatus
}{
	ActionApprove:       {From: StatusPending, To: StatusApproved},
	ActionReject:        {From: StatusPending, To: StatusRejected},
	ActionMarkPaid:      {From: StatusApproved, To: StatusPaid},
	ActionResendPayment: {From: StatusApproved, To: StatusApproved},
}

// columnActions maps a Kanban column (canonical status) to the action a drop triggers
var columnActions = map[ReservationStatus]Action{
	StatusApproved: ActionApprove,
	StatusRejected: ActionReject,
	StatusPaid:     ActionMarkPaid,
}

// Reservation is a guest's reservation request for the unit
type Reservation struct {
	ID    int64
	Token string // single-use link secret

	ArrivalDate   types.Date
	DepartureDate types.Date
	Nights        int
	Guests        int

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   *string

	// Pricing snapshot at submission time
	NightlyRate   float64
	Subtotal      float64
	Discount      float64
	PromoCode     *string
	PromoDiscount float64
	CleaningFee   float64
	TouristTax    float64
	Total         float64
	DepositAmount float64

	Status               ReservationStatus
	RejectionReason      *string
	StripePaymentLinkURL *string
	SmoobuReservationID  *int64

	Locale    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "First Last"
func (r *Reservation) FullName() string {
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// AmountDue is the amount payable after every discount
func (r *Reservation) AmountDue() float64 {
	return r.Total - r.PromoDiscount
}

// IsTerminal returns true if no lifecycle transition is defined out of the current status
func (r *Reservation) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// CanApply returns true if the action is legal from the current status
func (r *Reservation) CanApply(action Action) bool {
	_, ok := NextStatus(r.Status, action)
	return ok
}

// IsTerminal returns true for rejected, paid and cancelled
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusPaid || s == StatusCancelled
}

// IsValid returns true for a known status
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NextStatus returns the status produced by applying action to from,
// or false if the transition is not legal
func NextStatus(from ReservationStatus, action Action) (ReservationStatus, bool) {
	t, ok := transitions[action]
	if !ok || t.From != from {
		return "", false
	}
	return t.To, true
}

// RequiredStatus returns the status an action must start from
func RequiredStatus(action Action) (ReservationStatus, bool) {
	t, ok := transitions[action]
	return t.From, ok
}

// CanTransition returns true if some action moves a reservation from -> to
func CanTransition(from, to ReservationStatus) bool {
	for _, t := range transitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// ActionForColumn returns the action mapped to a Kanban column status
func ActionForColumn(column ReservationStatus) (Action, bool) {
	a, ok := columnActions[column]
	return a, ok
}

// ReservationFilter filters the reservation list
type ReservationFilter struct {
	Status *ReservationStatus // nil - all statuses
}

// StatusChange is a conditional status update: applied only while the
// reservation is still in From. Optional fields are written together with the status
type StatusChange struct {
	From            ReservationStatus
	To              ReservationStatus
	DepositAmount   *float64
	PaymentLinkURL  *string
	RejectionReason *string
}
