package domain

import "time"

// Reservation is a stay that is not currently installed in a room: a future
// booking waiting in the ledger until promotion or cancellation.
// ReservationID is minted by the ledger sequence, strictly increasing and
// never reused, even after deletions.
type Reservation struct {
	ReservationID int64 `json:"reservationID"`
	RoomNumber    int   `json:"roomNumber"`
	Stay
}

// DueOn reports whether the reservation qualifies for promotion on the
// given day, i.e. its check-in date has arrived.
func (r Reservation) DueOn(day time.Time) bool {
	return !r.Period.CheckIn.After(DateOnly(day))
}
