package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// roomService provides read views over the inventory with status derived
// from the occupancy dates on every read. The stored tables carry no
// status field, so a stale classification cannot survive a read.
type roomService struct {
	roomRepo portsrepo.RoomReader
	resRepo  portsrepo.ReservationReader
	now      func() time.Time
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo portsrepo.RoomReader, resRepo portsrepo.ReservationReader) portssvc.RoomSvcFacade {
	return &roomService{
		roomRepo: roomRepo,
		resRepo:  resRepo,
		now:      time.Now,
	}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// ListRooms returns the full inventory with derived statuses.
func (s *roomService) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		logger.Error("Failed to list rooms", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	reservations, err := s.resRepo.ListReservations(ctx)
	if err != nil {
		logger.Error("Failed to list reservations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	queuedByRoom := make(map[int]int, len(reservations))
	for _, res := range reservations {
		queuedByRoom[res.RoomNumber]++
	}

	today := domain.DateOnly(s.now())
	views := make([]domain.RoomView, len(rooms))
	for i, room := range rooms {
		queued := queuedByRoom[room.RoomNumber]
		views[i] = domain.RoomView{
			Room:               room,
			Status:             room.StatusOn(today, queued > 0),
			QueuedReservations: queued,
			NeedsRepair:        room.NeedsRepair(),
		}
	}

	logger.Debug("Rooms listed successfully", slog.Int("count", len(views)))
	return views, nil
}

// GetRoom returns one room with derived status.
func (s *roomService) GetRoom(ctx context.Context, roomNumber int) (*domain.RoomView, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	room, err := s.roomRepo.FindRoomByNumber(ctx, roomNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find room", slog.String("error", err.Error()), slog.Int("room_number", roomNumber))
		}
		return nil, err
	}
	reservations, err := s.resRepo.ListReservationsForRoom(ctx, roomNumber)
	if err != nil {
		logger.Error("Failed to list reservations for room", slog.String("error", err.Error()), slog.Int("room_number", roomNumber))
		return nil, fmt.Errorf("failed to list reservations for room %d: %w", roomNumber, err)
	}

	today := domain.DateOnly(s.now())
	view := &domain.RoomView{
		Room:               *room,
		Status:             room.StatusOn(today, len(reservations) > 0),
		QueuedReservations: len(reservations),
		NeedsRepair:        room.NeedsRepair(),
	}
	return view, nil
}

// ListAvailableRooms returns rooms classified Available as of today.
func (s *roomService) ListAvailableRooms(ctx context.Context) ([]domain.RoomView, error) {
	return s.listByStatus(ctx, domain.StatusAvailable)
}

// ListOccupiedRooms returns rooms classified Occupied as of today.
func (s *roomService) ListOccupiedRooms(ctx context.Context) ([]domain.RoomView, error) {
	return s.listByStatus(ctx, domain.StatusOccupied)
}

func (s *roomService) listByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.RoomView, error) {
	views, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	filtered := views[:0]
	for _, view := range views {
		if view.Status == status {
			filtered = append(filtered, view)
		}
	}
	return filtered, nil
}
