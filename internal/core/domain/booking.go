package domain

import "github.com/shopspring/decimal"

// PlacementKind says how a registered stay was placed.
type PlacementKind string

const (
	// PlacementImmediate means the stay was installed as the room's current occupancy.
	PlacementImmediate PlacementKind = "CHECKED_IN"
	// PlacementReserved means the stay was queued in the reservation ledger.
	PlacementReserved PlacementKind = "RESERVED"
)

// Registration is the outcome of a successful register-stay operation.
// Exactly one of Room or Reservation is set, matching Kind.
type Registration struct {
	Kind        PlacementKind `json:"kind"`
	Room        *Room         `json:"room,omitempty"`
	Reservation *Reservation  `json:"reservation,omitempty"`
}

// CheckoutResult is the outcome of a successful check-out: the settled
// balance and, when a queued reservation was due, the promoted reservation
// now installed as the room's occupancy.
type CheckoutResult struct {
	RoomNumber int             `json:"roomNumber"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Overpaid   decimal.Decimal `json:"overpaid"`
	Promoted   *Reservation    `json:"promoted,omitempty"`
}
