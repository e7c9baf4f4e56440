package dto

import (
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OccupancySummaryResponse represents the dashboard counters.
type OccupancySummaryResponse struct {
	AsOf               string `json:"asOf"`
	TotalRooms         int    `json:"totalRooms"`
	AvailableNow       int    `json:"availableNow"`
	OccupiedNow        int    `json:"occupiedNow"`
	FutureReservations int    `json:"futureReservations"`
}

// ToOccupancySummaryResponse converts a domain occupancy summary.
func ToOccupancySummaryResponse(s *domain.OccupancySummary, asOf time.Time) OccupancySummaryResponse {
	return OccupancySummaryResponse{
		AsOf:               asOf.Format(dateLayout),
		TotalRooms:         s.TotalRooms,
		AvailableNow:       s.AvailableNow,
		OccupiedNow:        s.OccupiedNow,
		FutureReservations: s.FutureReservations,
	}
}

// RoomRevenueResponse represents one room's aggregated balances.
type RoomRevenueResponse struct {
	RoomNumber int             `json:"roomNumber"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// RevenueSummaryResponse represents the revenue report.
type RevenueSummaryResponse struct {
	TotalPaid      decimal.Decimal       `json:"totalPaid"`
	TotalRemaining decimal.Decimal       `json:"totalRemaining"`
	Rooms          []RoomRevenueResponse `json:"rooms"`
}

// ToRevenueSummaryResponse converts a domain revenue summary.
func ToRevenueSummaryResponse(s *domain.RevenueSummary) RevenueSummaryResponse {
	resp := RevenueSummaryResponse{
		TotalPaid:      s.TotalPaid,
		TotalRemaining: s.TotalRemaining,
		Rooms:          make([]RoomRevenueResponse, len(s.Rooms)),
	}
	for i, room := range s.Rooms {
		resp.Rooms[i] = RoomRevenueResponse{
			RoomNumber: room.RoomNumber,
			Paid:       room.Paid,
			Remaining:  room.Remaining,
		}
	}
	return resp
}
