package services

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BookingSvcFacade defines the mutating operations of the booking engine:
// registering stays, check-out with settlement, and promotion of queued
// reservations into vacated rooms.
type BookingSvcFacade interface {
	// RegisterStay validates a proposed stay, rejects it on conflicts, and
	// either installs it as the room's current occupancy (check-in today or
	// earlier) or queues it as a reservation. Atomic per room.
	RegisterStay(ctx context.Context, req dto.RegisterStayRequest) (*domain.Registration, error)

	// CheckOut applies an additional payment to the room's occupant. On a
	// shortfall it returns StillOwingError and changes nothing; once the
	// balance clears it frees the room and promotes the earliest due
	// reservation, if any, in the same transaction.
	CheckOut(ctx context.Context, roomNumber int, additionalPayment decimal.Decimal) (*domain.CheckoutResult, error)

	// PromoteDueReservations backfills every vacant room whose earliest
	// queued reservation is due, returning the promoted reservations.
	PromoteDueReservations(ctx context.Context) ([]domain.Reservation, error)
}
