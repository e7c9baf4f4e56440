package repositories

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RoomReader defines read operations on the room inventory.
type RoomReader interface {
	// FindRoomByNumber retrieves a room with its current occupancy, if any.
	FindRoomByNumber(ctx context.Context, roomNumber int) (*domain.Room, error)

	// ListRooms retrieves the full fixed inventory ordered by room number.
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// RoomWriter defines write operations on the room inventory. Rooms are
// seeded once by migration; only the embedded occupancy ever changes.
type RoomWriter interface {
	// SetOccupant replaces the room's current occupancy. A nil stay clears
	// the room (all occupancy fields reset).
	SetOccupant(ctx context.Context, roomNumber int, occupant *domain.Stay) error
}

// RoomTransactionSupport defines room operations that run inside a caller
// managed transaction.
type RoomTransactionSupport interface {
	// FindRoomByNumberForUpdate loads a room and locks its row for the
	// duration of the transaction, serializing mutations per room.
	FindRoomByNumberForUpdate(ctx context.Context, tx pgx.Tx, roomNumber int) (*domain.Room, error)

	// SetOccupantInTx replaces the room's occupancy within the transaction.
	SetOccupantInTx(ctx context.Context, tx pgx.Tx, roomNumber int, occupant *domain.Stay) error
}

// RoomRepositoryFacade combines all room repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
	RoomTransactionSupport
}

// RoomRepositoryWithTx extends RoomRepositoryFacade with transaction capabilities.
type RoomRepositoryWithTx interface {
	RoomRepositoryFacade
	TransactionManager
}
