// Package booking holds the pure decision logic of the reservation system:
// conflict detection, placement, settlement, promotion selection and status
// derivation. Functions here take the inventory and ledger state explicitly
// and perform no I/O, so any fixture can be evaluated without a database.
package booking

import (
	"sort"
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Conflict describes one existing stay that overlaps a proposed range.
// ReservationID is zero when the colliding stay is the room's current
// occupant rather than a ledger entry.
type Conflict struct {
	ReservationID int64
	RoomNumber    int
	GuestName     string
	Period        domain.DateRange
}

// IsOccupant reports whether the conflict is against the current occupant.
func (c Conflict) IsOccupant() bool {
	return c.ReservationID == 0
}

// ConflictResult lists every stored stay that collides with a proposed
// range. Unchecked counts stored records whose date range was missing and
// therefore imposed no constraint; callers should surface them.
type ConflictResult struct {
	Conflicts []Conflict
	Unchecked int
}

// OK reports whether the proposed range may be placed.
func (r ConflictResult) OK() bool {
	return len(r.Conflicts) == 0
}

// CheckConflict computes overlaps between a proposed half-open range and
// every stored stay on the room: the current occupant, if any, and each
// ledger reservation referencing the room. It accumulates all collisions
// rather than stopping at the first so the caller can report them together.
func CheckConflict(room domain.Room, reservations []domain.Reservation, proposed domain.DateRange) ConflictResult {
	var result ConflictResult

	if room.Occupant != nil {
		if room.Occupant.Period.IsZero() {
			result.Unchecked++
		} else if proposed.Overlaps(room.Occupant.Period) {
			result.Conflicts = append(result.Conflicts, Conflict{
				RoomNumber: room.RoomNumber,
				GuestName:  room.Occupant.Guest.Name,
				Period:     room.Occupant.Period,
			})
		}
	}

	for _, res := range reservations {
		if res.RoomNumber != room.RoomNumber {
			continue
		}
		if res.Period.IsZero() {
			result.Unchecked++
			continue
		}
		if proposed.Overlaps(res.Period) {
			result.Conflicts = append(result.Conflicts, Conflict{
				ReservationID: res.ReservationID,
				RoomNumber:    res.RoomNumber,
				GuestName:     res.Guest.Name,
				Period:        res.Period,
			})
		}
	}

	return result
}

// Placement says where a conflict-free proposed stay goes.
type Placement int

const (
	// PlaceImmediate installs the stay as the room's current occupancy.
	PlaceImmediate Placement = iota
	// PlaceFuture appends the stay to the reservation ledger.
	PlaceFuture
)

// DecidePlacement classifies a proposed stay: check-in on or before today
// means the guest occupies the room now, otherwise the stay is queued.
func DecidePlacement(proposed domain.DateRange, today time.Time) Placement {
	if !proposed.CheckIn.After(domain.DateOnly(today)) {
		return PlaceImmediate
	}
	return PlaceFuture
}

// Settlement is the outcome of applying a payment at check-out.
type Settlement struct {
	Cleared   bool
	NewPaid   decimal.Decimal
	Remaining decimal.Decimal
}

// Settle applies an additional payment to the occupant's balance. The room
// may only be cleared when the remaining balance drops to zero or below;
// on a shortfall the caller must leave the occupancy untouched.
func Settle(occupant domain.Stay, additionalPayment decimal.Decimal) Settlement {
	newPaid := occupant.Paid.Add(additionalPayment)
	remaining := occupant.TotalCost.Sub(newPaid)
	return Settlement{
		Cleared:   !remaining.IsPositive(),
		NewPaid:   newPaid,
		Remaining: remaining,
	}
}

// SelectPromotion picks the reservation to backfill a vacated room: the
// earliest check-in among the room's queued reservations, ties broken by
// lowest reservation id. It returns ok only when that reservation is due
// (check-in on or before today); a future reservation stays queued.
func SelectPromotion(reservations []domain.Reservation, today time.Time) (domain.Reservation, bool) {
	if len(reservations) == 0 {
		return domain.Reservation{}, false
	}

	sorted := make([]domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Period.CheckIn.Equal(sorted[j].Period.CheckIn) {
			return sorted[i].Period.CheckIn.Before(sorted[j].Period.CheckIn)
		}
		return sorted[i].ReservationID < sorted[j].ReservationID
	})

	next := sorted[0]
	if !next.DueOn(today) {
		return domain.Reservation{}, false
	}
	return next, true
}

// StatusAt derives a room's status for the given day from its occupancy
// range and queued reservations. The stored tables carry no status field;
// this is the only classification path, so a lapsed occupancy can never be
// reported as Occupied.
func StatusAt(room domain.Room, queued []domain.Reservation, today time.Time) domain.RoomStatus {
	hasQueued := false
	for _, res := range queued {
		if res.RoomNumber == room.RoomNumber {
			hasQueued = true
			break
		}
	}
	return room.StatusOn(today, hasQueued)
}
