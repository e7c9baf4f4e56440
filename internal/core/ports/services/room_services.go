package services

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
)

// RoomSvcFacade defines read operations over the room inventory with
// derived status classification.
type RoomSvcFacade interface {
	// ListRooms returns the full inventory with derived statuses.
	ListRooms(ctx context.Context) ([]domain.RoomView, error)

	// GetRoom returns one room with derived status.
	GetRoom(ctx context.Context, roomNumber int) (*domain.RoomView, error)

	// ListAvailableRooms returns rooms classified Available as of today.
	ListAvailableRooms(ctx context.Context) ([]domain.RoomView, error)

	// ListOccupiedRooms returns rooms classified Occupied as of today.
	ListOccupiedRooms(ctx context.Context) ([]domain.RoomView, error)
}
