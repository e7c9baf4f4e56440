package services

import (
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Booking = NewBookingService(repos.RoomRepo, repos.ReservationRepo)
	container.Room = NewRoomService(repos.RoomRepo, repos.ReservationRepo)
	container.Reservation = NewReservationService(repos.ReservationRepo)
	container.Reporting = NewReportingService(repos.RoomRepo, repos.ReservationRepo, repos.ReportingRepo)

	return container
}

// Interface implementation checks at compile time
var (
	_ portssvc.BookingSvcFacade     = (*bookingService)(nil)
	_ portssvc.RoomSvcFacade        = (*roomService)(nil)
	_ portssvc.ReservationSvcFacade = (*reservationService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
)
