package dto

import (
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OccupantResponse mirrors the stay embedded in a room or reservation.
type OccupantResponse struct {
	GuestName    string          `json:"guestName"`
	IDDocument   string          `json:"idDocument"`
	Address      string          `json:"address"`
	Occupation   string          `json:"occupation"`
	Nationality  string          `json:"nationality"`
	Nights       int             `json:"nights"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Paid         decimal.Decimal `json:"paid"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Remaining    decimal.Decimal `json:"remaining"`
}

// ToOccupantResponse converts a domain stay. Missing date bounds render as
// empty strings so repair cases stay visible instead of zero timestamps.
func ToOccupantResponse(s *domain.Stay) OccupantResponse {
	resp := OccupantResponse{
		GuestName:   s.Guest.Name,
		IDDocument:  s.Guest.IDDocument,
		Address:     s.Guest.Address,
		Occupation:  s.Guest.Occupation,
		Nationality: s.Guest.Nationality,
		Nights:      s.Nights,
		Paid:        s.Paid,
		TotalCost:   s.TotalCost,
		Remaining:   s.Remaining(),
	}
	if !s.Period.CheckIn.IsZero() {
		resp.CheckInDate = s.Period.CheckIn.Format(dateLayout)
	}
	if !s.Period.CheckOut.IsZero() {
		resp.CheckOutDate = s.Period.CheckOut.Format(dateLayout)
	}
	return resp
}

// RoomResponse defines the data returned for a room, with its status
// derived at read time.
type RoomResponse struct {
	RoomNumber         int               `json:"roomNumber"`
	Status             domain.RoomStatus `json:"status"`
	QueuedReservations int               `json:"queuedReservations"`
	NeedsRepair        bool              `json:"needsRepair,omitempty"`
	Occupant           *OccupantResponse `json:"occupant,omitempty"`
}

// ToRoomResponse converts a domain room view.
func ToRoomResponse(v *domain.RoomView) RoomResponse {
	resp := RoomResponse{
		RoomNumber:         v.RoomNumber,
		Status:             v.Status,
		QueuedReservations: v.QueuedReservations,
		NeedsRepair:        v.NeedsRepair,
	}
	if v.Occupant != nil {
		occupant := ToOccupantResponse(v.Occupant)
		resp.Occupant = &occupant
	}
	return resp
}

// ListRoomsResponse wraps the list of rooms.
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToListRoomsResponse converts a slice of room views.
func ToListRoomsResponse(views []domain.RoomView) ListRoomsResponse {
	resp := ListRoomsResponse{Rooms: make([]RoomResponse, len(views))}
	for i := range views {
		resp.Rooms[i] = ToRoomResponse(&views[i])
	}
	return resp
}
