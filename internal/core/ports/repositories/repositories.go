package repositories

// RepositoryProvider bundles the concrete repositories handed to the
// service container at startup.
type RepositoryProvider struct {
	RoomRepo        RoomRepositoryWithTx
	ReservationRepo ReservationRepositoryWithTx
	ReportingRepo   ReportingRepository
}
