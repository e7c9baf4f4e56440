package pgsql

import (
	"context"
	"fmt"

	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a new repository for aggregate reports.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// RevenueTotals sums paid and remaining amounts per room, across the current
// occupancies and the reservation ledger. Rooms with no recorded stay at all
// are omitted from the per-room breakdown.
func (r *PgxReportingRepository) RevenueTotals(ctx context.Context) (*domain.RevenueSummary, error) {
	query := `
		SELECT room_number, SUM(paid) AS paid, SUM(total_cost - paid) AS remaining
		FROM (
			SELECT room_number, paid, total_cost
			FROM rooms
			WHERE guest_name IS NOT NULL AND paid IS NOT NULL AND total_cost IS NOT NULL
			UNION ALL
			SELECT room_number, paid, total_cost
			FROM reservations
		) stays
		GROUP BY room_number
		ORDER BY room_number;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue totals: %w", err)
	}
	defer rows.Close()

	perRoom, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoomRevenue, error) {
		var rev domain.RoomRevenue
		err := row.Scan(&rev.RoomNumber, &rev.Paid, &rev.Remaining)
		return rev, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan revenue totals: %w", err)
	}

	summary := &domain.RevenueSummary{
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
		Rooms:          perRoom,
	}
	for _, rev := range perRoom {
		summary.TotalPaid = summary.TotalPaid.Add(rev.Paid)
		summary.TotalRemaining = summary.TotalRemaining.Add(rev.Remaining)
	}
	return summary, nil
}
