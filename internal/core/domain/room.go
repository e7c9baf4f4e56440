package domain

import "time"

// RoomStatus classifies a room at read time. It is never stored: the
// occupancy date range is the source of truth and the status is derived
// from it on every read, so a lapsed occupancy can never read as Occupied.
type RoomStatus string

const (
	StatusAvailable RoomStatus = "AVAILABLE"
	StatusOccupied  RoomStatus = "OCCUPIED"
	StatusBooked    RoomStatus = "BOOKED"
)

// Room is one physical room of the fixed inventory. RoomNumber is its
// immutable identity; Occupant is nil while the room is vacant.
type Room struct {
	RoomNumber int   `json:"roomNumber"`
	Occupant   *Stay `json:"occupant,omitempty"`
}

// OccupiedOn reports whether the current occupant's range covers the given day.
func (r Room) OccupiedOn(day time.Time) bool {
	return r.Occupant != nil && r.Occupant.Period.Contains(day)
}

// NeedsRepair reports whether the room carries an occupant record with a
// missing date range. Such a record imposes no booking constraint (matching
// the source system) but must be surfaced for manual repair rather than
// silently ignored.
func (r Room) NeedsRepair() bool {
	return r.Occupant != nil && r.Occupant.Period.IsZero()
}

// StatusOn derives the room status for the given day. hasQueued tells
// whether any reservation is queued against this room.
func (r Room) StatusOn(day time.Time, hasQueued bool) RoomStatus {
	if r.OccupiedOn(day) {
		return StatusOccupied
	}
	if hasQueued {
		return StatusBooked
	}
	return StatusAvailable
}

// RoomView is a Room decorated with its derived read-time classification.
type RoomView struct {
	Room
	Status             RoomStatus `json:"status"`
	QueuedReservations int        `json:"queuedReservations"`
	NeedsRepair        bool       `json:"needsRepair"`
}
