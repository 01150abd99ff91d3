package domain

import "fmt"

// CapabilityKind is the kind of authority a caller holds
type CapabilityKind int

const (
	CapabilityDenied CapabilityKind = iota
	CapabilitySingleReservation
	CapabilityFull
)

// Capability is the resolved authority of a request:
// access to one reservation (link token), to everything (operator session) or nothing
type Capability struct {
	kind          CapabilityKind
	reservationID int64
}

// Denied returns a capability that allows nothing
func Denied() Capability {
	return Capability{kind: CapabilityDenied}
}

// FullAccess returns the operator capability
func FullAccess() Capability {
	return Capability{kind: CapabilityFull}
}

// SingleReservationAccess returns a capability scoped to one reservation
func SingleReservationAccess(reservationID int64) Capability {
	return Capability{kind: CapabilitySingleReservation, reservationID: reservationID}
}

// Kind returns the capability kind
func (c Capability) Kind() CapabilityKind {
	return c.kind
}

// IsFull returns true for the operator capability
func (c Capability) IsFull() bool {
	return c.kind == CapabilityFull
}

// IsDenied returns true if the capability allows nothing
func (c Capability) IsDenied() bool {
	return c.kind == CapabilityDenied
}

// Allows reports whether the capability may act on the reservation
func (c Capability) Allows(reservationID int64) bool {
	switch c.kind {
	case CapabilityFull:
		return true
	case CapabilitySingleReservation:
		return c.reservationID == reservationID
	default:
		return false
	}
}

func (c Capability) String() string {
	switch c.kind {
	case CapabilityFull:
		return "full"
	case CapabilitySingleReservation:
		return fmt.Sprintf("reservation:%d", c.reservationID)
	default:
		return "denied"
	}
}
