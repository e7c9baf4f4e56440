package pgsql

import (
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	roomRepo := NewPgxRoomRepository(dbPool)
	reservationRepo := NewPgxReservationRepository(dbPool)
	reportingRepo := NewPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RoomRepo:        roomRepo,
		ReservationRepo: reservationRepo,
		ReportingRepo:   reportingRepo,
	}
}
