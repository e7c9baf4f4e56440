package repositories

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ReservationReader defines read operations on the reservation ledger.
type ReservationReader interface {
	// FindReservationByID retrieves a single ledger entry.
	FindReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error)

	// ListReservations retrieves the whole ledger ordered by check-in date,
	// ties by reservation id.
	ListReservations(ctx context.Context) ([]domain.Reservation, error)

	// ListReservationsForRoom retrieves the ledger entries for one room in
	// the same order.
	ListReservationsForRoom(ctx context.Context, roomNumber int) ([]domain.Reservation, error)
}

// ReservationWriter defines standalone write operations on the ledger.
type ReservationWriter interface {
	// DeleteReservation removes a ledger entry (explicit cancellation).
	// Returns apperrors.ErrNotFound when no such entry exists.
	DeleteReservation(ctx context.Context, reservationID int64) error
}

// ReservationTransactionSupport defines ledger operations that run inside a
// caller managed transaction, used by register-stay and promotion.
type ReservationTransactionSupport interface {
	// ListReservationsForRoomInTx reads one room's ledger entries within the
	// transaction, so conflict checks see a consistent snapshot.
	ListReservationsForRoomInTx(ctx context.Context, tx pgx.Tx, roomNumber int) ([]domain.Reservation, error)

	// InsertReservationInTx appends a ledger entry and returns the id minted
	// by the ledger sequence (strictly increasing, never reused).
	InsertReservationInTx(ctx context.Context, tx pgx.Tx, reservation domain.Reservation) (int64, error)

	// DeleteReservationInTx removes a ledger entry within the transaction
	// (the removal half of an atomic promotion).
	DeleteReservationInTx(ctx context.Context, tx pgx.Tx, reservationID int64) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
	ReservationTransactionSupport
}

// ReservationRepositoryWithTx extends ReservationRepositoryFacade with
// transaction capabilities.
type ReservationRepositoryWithTx interface {
	ReservationRepositoryFacade
	TransactionManager
}
