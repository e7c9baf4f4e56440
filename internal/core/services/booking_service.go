package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/booking"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/hmsops/hotel_management_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrRoomNotOccupied is returned when check-out targets a room with no
// current occupant.
var ErrRoomNotOccupied = fmt.Errorf("%w: room has no current occupant", apperrors.ErrNotFound)

// ConflictError rejects a proposed stay with the full list of colliding
// stays, so the caller can report all of them at once.
type ConflictError struct {
	RoomNumber int
	Conflicts  []booking.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d conflicting stay(s) on room %d", len(e.Conflicts), e.RoomNumber)
}

func (e *ConflictError) Unwrap() error {
	return apperrors.ErrConflict
}

// StillOwingError rejects a check-out whose payment leaves a positive
// balance. Nothing is mutated; the caller may retry with a larger payment.
type StillOwingError struct {
	RoomNumber int
	Remaining  decimal.Decimal
}

func (e *StillOwingError) Error() string {
	return fmt.Sprintf("guest in room %d still owes %s", e.RoomNumber, e.Remaining.StringFixed(2))
}

// bookingService implements the register/check-out/promotion operations.
// Each mutating operation runs inside a single transaction with the room
// row locked, so decision and mutation are never interleaved with another
// writer on the same room.
type bookingService struct {
	roomRepo portsrepo.RoomRepositoryWithTx
	resRepo  portsrepo.ReservationRepositoryFacade
	now      func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(roomRepo portsrepo.RoomRepositoryWithTx, resRepo portsrepo.ReservationRepositoryFacade) portssvc.BookingSvcFacade {
	return &bookingService{
		roomRepo: roomRepo,
		resRepo:  resRepo,
		now:      time.Now,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) today() time.Time {
	return domain.DateOnly(s.now())
}

// RegisterStay validates, conflict-checks and places a proposed stay.
func (s *bookingService) RegisterStay(ctx context.Context, req dto.RegisterStayRequest) (*domain.Registration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stay, err := req.ProposedStay()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := stay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tx, err := s.roomRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.roomRepo.Rollback(ctx, tx) }()

	room, err := s.roomRepo.FindRoomByNumberForUpdate(ctx, tx, req.RoomNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load room for registration", slog.String("error", err.Error()), slog.Int("room_number", req.RoomNumber))
		}
		return nil, err
	}

	reservations, err := s.resRepo.ListReservationsForRoomInTx(ctx, tx, room.RoomNumber)
	if err != nil {
		logger.Error("Failed to load reservations for conflict check", slog.String("error", err.Error()), slog.Int("room_number", room.RoomNumber))
		return nil, fmt.Errorf("failed to load reservations for room %d: %w", room.RoomNumber, err)
	}

	check := booking.CheckConflict(*room, reservations, stay.Period)
	if check.Unchecked > 0 {
		// A stored stay without dates imposes no constraint; surface it so
		// the record gets repaired instead of silently allowing overlap.
		logger.Warn("Stored stay with missing dates skipped during conflict check",
			slog.Int("room_number", room.RoomNumber),
			slog.Int("skipped", check.Unchecked))
	}
	if !check.OK() {
		return nil, &ConflictError{RoomNumber: room.RoomNumber, Conflicts: check.Conflicts}
	}

	switch booking.DecidePlacement(stay.Period, s.today()) {
	case booking.PlaceImmediate:
		if err := s.roomRepo.SetOccupantInTx(ctx, tx, room.RoomNumber, &stay); err != nil {
			logger.Error("Failed to install occupant", slog.String("error", err.Error()), slog.Int("room_number", room.RoomNumber))
			return nil, fmt.Errorf("failed to install occupant in room %d: %w", room.RoomNumber, err)
		}
		if err := s.roomRepo.Commit(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to commit registration: %w", err)
		}

		room.Occupant = &stay
		logger.Info("Guest checked in", slog.Int("room_number", room.RoomNumber), slog.String("guest", stay.Guest.Name))
		return &domain.Registration{Kind: domain.PlacementImmediate, Room: room}, nil

	default:
		reservation := domain.Reservation{RoomNumber: room.RoomNumber, Stay: stay}
		id, err := s.resRepo.InsertReservationInTx(ctx, tx, reservation)
		if err != nil {
			logger.Error("Failed to queue reservation", slog.String("error", err.Error()), slog.Int("room_number", room.RoomNumber))
			return nil, fmt.Errorf("failed to queue reservation for room %d: %w", room.RoomNumber, err)
		}
		if err := s.roomRepo.Commit(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to commit registration: %w", err)
		}

		reservation.ReservationID = id
		logger.Info("Reservation queued", slog.Int("room_number", room.RoomNumber), slog.Int64("reservation_id", id))
		return &domain.Registration{Kind: domain.PlacementReserved, Reservation: &reservation}, nil
	}
}

// CheckOut settles the occupant's balance, frees the room and promotes the
// earliest due reservation in the same transaction.
func (s *bookingService) CheckOut(ctx context.Context, roomNumber int, additionalPayment decimal.Decimal) (*domain.CheckoutResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if additionalPayment.IsNegative() {
		return nil, fmt.Errorf("%w: additional payment must not be negative", apperrors.ErrValidation)
	}

	tx, err := s.roomRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.roomRepo.Rollback(ctx, tx) }()

	room, err := s.roomRepo.FindRoomByNumberForUpdate(ctx, tx, roomNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load room for check-out", slog.String("error", err.Error()), slog.Int("room_number", roomNumber))
		}
		return nil, err
	}
	if room.Occupant == nil {
		return nil, ErrRoomNotOccupied
	}

	settlement := booking.Settle(*room.Occupant, additionalPayment)
	if !settlement.Cleared {
		// No mutation on shortfall; caller may retry with a larger payment.
		return nil, &StillOwingError{RoomNumber: roomNumber, Remaining: settlement.Remaining}
	}

	if err := s.roomRepo.SetOccupantInTx(ctx, tx, roomNumber, nil); err != nil {
		logger.Error("Failed to clear room", slog.String("error", err.Error()), slog.Int("room_number", roomNumber))
		return nil, fmt.Errorf("failed to clear room %d: %w", roomNumber, err)
	}

	result := &domain.CheckoutResult{
		RoomNumber: roomNumber,
		AmountPaid: settlement.NewPaid,
		Overpaid:   decimal.Zero,
	}
	if settlement.Remaining.IsNegative() {
		result.Overpaid = settlement.Remaining.Neg()
	}

	promoted, err := s.promoteInTx(ctx, tx, roomNumber)
	if err != nil {
		return nil, err
	}
	result.Promoted = promoted

	if err := s.roomRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit check-out: %w", err)
	}

	logger.Info("Room checked out", slog.Int("room_number", roomNumber), slog.Bool("promotion", promoted != nil))
	return result, nil
}

// promoteInTx installs the earliest due reservation for a just-vacated room
// and removes it from the ledger, all within the caller's transaction so a
// reservation never exists in both tables at once.
func (s *bookingService) promoteInTx(ctx context.Context, tx pgx.Tx, roomNumber int) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservations, err := s.resRepo.ListReservationsForRoomInTx(ctx, tx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for promotion on room %d: %w", roomNumber, err)
	}

	next, ok := booking.SelectPromotion(reservations, s.today())
	if !ok {
		return nil, nil
	}

	if err := s.roomRepo.SetOccupantInTx(ctx, tx, roomNumber, &next.Stay); err != nil {
		return nil, fmt.Errorf("failed to install promoted reservation %d: %w", next.ReservationID, err)
	}
	if err := s.resRepo.DeleteReservationInTx(ctx, tx, next.ReservationID); err != nil {
		return nil, fmt.Errorf("failed to remove promoted reservation %d from ledger: %w", next.ReservationID, err)
	}

	logger.Info("Reservation promoted", slog.Int("room_number", roomNumber), slog.Int64("reservation_id", next.ReservationID))
	return &next, nil
}

// PromoteDueReservations sweeps all vacant rooms and installs every due
// reservation, one transaction per room.
func (s *bookingService) PromoteDueReservations(ctx context.Context) ([]domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for promotion sweep: %w", err)
	}

	var promoted []domain.Reservation
	for _, room := range rooms {
		if room.Occupant != nil {
			continue
		}

		res, err := s.promoteRoom(ctx, room.RoomNumber)
		if err != nil {
			logger.Error("Promotion sweep failed for room", slog.String("error", err.Error()), slog.Int("room_number", room.RoomNumber))
			return promoted, err
		}
		if res != nil {
			promoted = append(promoted, *res)
		}
	}

	logger.Info("Promotion sweep completed", slog.Int("promoted", len(promoted)))
	return promoted, nil
}

func (s *bookingService) promoteRoom(ctx context.Context, roomNumber int) (*domain.Reservation, error) {
	tx, err := s.roomRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.roomRepo.Rollback(ctx, tx) }()

	// Re-check under the row lock; another writer may have filled the room.
	room, err := s.roomRepo.FindRoomByNumberForUpdate(ctx, tx, roomNumber)
	if err != nil {
		return nil, err
	}
	if room.Occupant != nil {
		return nil, nil
	}

	promoted, err := s.promoteInTx(ctx, tx, roomNumber)
	if err != nil {
		return nil, err
	}
	if promoted == nil {
		return nil, nil
	}

	if err := s.roomRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit promotion: %w", err)
	}
	return promoted, nil
}
