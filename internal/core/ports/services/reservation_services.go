package services

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
)

// ReservationSvcFacade defines operations over the reservation ledger.
type ReservationSvcFacade interface {
	// ListReservations returns the ledger sorted by check-in date.
	ListReservations(ctx context.Context) ([]domain.Reservation, error)

	// GetReservationByID returns one ledger entry.
	GetReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error)

	// CancelReservation removes a ledger entry. Its id is never reused.
	CancelReservation(ctx context.Context, reservationID int64) error
}
