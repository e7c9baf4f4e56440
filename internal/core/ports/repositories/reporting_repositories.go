package repositories

import (
	"context"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
)

// ReportingRepository defines aggregate read operations for reports.
type ReportingRepository interface {
	// RevenueTotals sums paid and remaining amounts per room across the
	// room inventory and the reservation ledger.
	RevenueTotals(ctx context.Context) (*domain.RevenueSummary, error)
}
