package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// reservationService provides ledger reads and explicit cancellation.
type reservationService struct {
	resRepo portsrepo.ReservationRepositoryFacade
}

// NewReservationService creates a new ReservationService.
func NewReservationService(resRepo portsrepo.ReservationRepositoryFacade) portssvc.ReservationSvcFacade {
	return &reservationService{resRepo: resRepo}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// ListReservations returns the ledger sorted by check-in date.
func (s *reservationService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservations, err := s.resRepo.ListReservations(ctx)
	if err != nil {
		logger.Error("Failed to list reservations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	if reservations == nil {
		return []domain.Reservation{}, nil
	}
	return reservations, nil
}

// GetReservationByID returns one ledger entry.
func (s *reservationService) GetReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.resRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find reservation", slog.String("error", err.Error()), slog.Int64("reservation_id", reservationID))
		}
		return nil, err
	}
	return reservation, nil
}

// CancelReservation removes a ledger entry. The freed id is never reused.
func (s *reservationService) CancelReservation(ctx context.Context, reservationID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.resRepo.DeleteReservation(ctx, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to cancel reservation", slog.String("error", err.Error()), slog.Int64("reservation_id", reservationID))
		}
		return err
	}

	logger.Info("Reservation cancelled", slog.Int64("reservation_id", reservationID))
	return nil
}
