package services

import (
	"context"
	"time"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
)

// ReportingSvcFacade defines the dashboard and revenue report operations.
type ReportingSvcFacade interface {
	// OccupancySummary counts available/occupied rooms and queued
	// reservations as of the given day.
	OccupancySummary(ctx context.Context, asOf time.Time) (*domain.OccupancySummary, error)

	// RevenueSummary totals collected and outstanding balances.
	RevenueSummary(ctx context.Context) (*domain.RevenueSummary, error)
}
