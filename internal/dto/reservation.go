package dto

import (
	"github.com/hmsops/hotel_management_app/internal/core/domain"
)

// ReservationResponse defines the data returned for a ledger entry.
type ReservationResponse struct {
	ReservationID int64            `json:"reservationID"`
	RoomNumber    int              `json:"roomNumber"`
	Stay          OccupantResponse `json:"stay"`
}

// ToReservationResponse converts a domain reservation.
func ToReservationResponse(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: res.ReservationID,
		RoomNumber:    res.RoomNumber,
		Stay:          ToOccupantResponse(&res.Stay),
	}
}

// ListReservationsResponse wraps the ledger listing.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ToListReservationsResponse converts a slice of reservations.
func ToListReservationsResponse(reservations []domain.Reservation) ListReservationsResponse {
	resp := ListReservationsResponse{Reservations: make([]ReservationResponse, len(reservations))}
	for i := range reservations {
		resp.Reservations[i] = ToReservationResponse(&reservations[i])
	}
	return resp
}
