package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// reportingService implements the dashboard and revenue reports.
type reportingService struct {
	roomRepo      portsrepo.RoomReader
	resRepo       portsrepo.ReservationReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(roomRepo portsrepo.RoomReader, resRepo portsrepo.ReservationReader, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		roomRepo:      roomRepo,
		resRepo:       resRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// OccupancySummary counts rooms and queued reservations as of the given day.
// "Available now" means not occupied now: a vacant room with only future
// reservations can still take a walk-in guest today.
func (s *reportingService) OccupancySummary(ctx context.Context, asOf time.Time) (*domain.OccupancySummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		logger.Error("Failed to list rooms for occupancy summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	reservations, err := s.resRepo.ListReservations(ctx)
	if err != nil {
		logger.Error("Failed to list reservations for occupancy summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	day := domain.DateOnly(asOf)
	summary := &domain.OccupancySummary{TotalRooms: len(rooms)}
	for _, room := range rooms {
		if room.OccupiedOn(day) {
			summary.OccupiedNow++
		}
	}
	summary.AvailableNow = summary.TotalRooms - summary.OccupiedNow

	for _, res := range reservations {
		if res.Period.CheckIn.After(day) {
			summary.FutureReservations++
		}
	}

	logger.Debug("Occupancy summary generated",
		slog.Int("occupied", summary.OccupiedNow),
		slog.Int("available", summary.AvailableNow),
		slog.Int("future_reservations", summary.FutureReservations))
	return summary, nil
}

// RevenueSummary totals collected and outstanding balances across both tables.
func (s *reportingService) RevenueSummary(ctx context.Context) (*domain.RevenueSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.reportingRepo.RevenueTotals(ctx)
	if err != nil {
		logger.Error("Failed to compute revenue totals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute revenue totals: %w", err)
	}

	logger.Debug("Revenue summary generated", slog.Int("rooms", len(summary.Rooms)))
	return summary, nil
}
