package domain

import "time"

// EventType is a reservation lifecycle event
type EventType string

const (
	EventCreated  EventType = "created"
	EventApproved EventType = "approved"
	EventRejected EventType = "rejected"
	EventPaid     EventType = "paid"
)

// ReservationEvent carries the reservation snapshot taken right after the change
type ReservationEvent struct {
	Type        EventType
	Reservation Reservation
	OccurredAt  time.Time
}

// NewReservationEvent snapshots r for publishing
func NewReservationEvent(t EventType, r *Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{Type: t, Reservation: *r, OccurredAt: at}
}
