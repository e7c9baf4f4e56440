package domain

import "github.com/shopspring/decimal"

// OccupancySummary is the dashboard view: room counts as of a given day.
type OccupancySummary struct {
	TotalRooms         int `json:"totalRooms"`
	AvailableNow       int `json:"availableNow"`
	OccupiedNow        int `json:"occupiedNow"`
	FutureReservations int `json:"futureReservations"`
}

// RoomRevenue aggregates the balances recorded against one room, across its
// current occupancy and every queued reservation.
type RoomRevenue struct {
	RoomNumber int             `json:"roomNumber"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// RevenueSummary totals collected and outstanding amounts across both tables.
type RevenueSummary struct {
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
	Rooms          []RoomRevenue   `json:"rooms"`
}
