package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `reservation_id, room_number, guest_name, guest_id_document, guest_address, guest_occupation, guest_nationality, nights, check_in_date, check_out_date, paid, total_cost`

// Ledger reads always come back ordered by check-in date with the
// reservation id as tie breaker, which is the promotion priority order.
const reservationOrder = ` ORDER BY check_in_date, reservation_id`

type PgxReservationRepository struct {
	txManager
	pool *pgxpool.Pool
}

// NewPgxReservationRepository creates a new repository for the reservation ledger.
func NewPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryWithTx {
	return &PgxReservationRepository{txManager: txManager{pool: pool}, pool: pool}
}

func scanReservation(row pgx.Row) (domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ReservationID,
		&res.RoomNumber,
		&res.Guest.Name,
		&res.Guest.IDDocument,
		&res.Guest.Address,
		&res.Guest.Occupation,
		&res.Guest.Nationality,
		&res.Nights,
		&res.Period.CheckIn,
		&res.Period.CheckOut,
		&res.Paid,
		&res.TotalCost,
	)
	if err != nil {
		return domain.Reservation{}, err
	}
	res.Period.CheckIn = domain.DateOnly(res.Period.CheckIn)
	res.Period.CheckOut = domain.DateOnly(res.Period.CheckOut)
	return res, nil
}

func collectReservations(rows pgx.Rows) ([]domain.Reservation, error) {
	defer rows.Close()
	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Reservation, error) {
		return scanReservation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}
	return reservations, nil
}

// FindReservationByID retrieves a single ledger entry.
func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE reservation_id = $1`, reservationColumns)

	res, err := scanReservation(r.pool.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation %d: %w", reservationID, err)
	}
	return &res, nil
}

// ListReservations retrieves the whole ledger in promotion priority order.
func (r *PgxReservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations%s`, reservationColumns, reservationOrder)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	return collectReservations(rows)
}

// ListReservationsForRoom retrieves one room's ledger entries.
func (r *PgxReservationRepository) ListReservationsForRoom(ctx context.Context, roomNumber int) ([]domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE room_number = $1%s`, reservationColumns, reservationOrder)

	rows, err := r.pool.Query(ctx, query, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for room %d: %w", roomNumber, err)
	}
	return collectReservations(rows)
}

// ListReservationsForRoomInTx retrieves one room's ledger entries within the
// transaction.
func (r *PgxReservationRepository) ListReservationsForRoomInTx(ctx context.Context, tx pgx.Tx, roomNumber int) ([]domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE room_number = $1%s`, reservationColumns, reservationOrder)

	rows, err := tx.Query(ctx, query, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for room %d: %w", roomNumber, err)
	}
	return collectReservations(rows)
}

// InsertReservationInTx appends a ledger entry and returns the id minted by
// the ledger sequence.
func (r *PgxReservationRepository) InsertReservationInTx(ctx context.Context, tx pgx.Tx, reservation domain.Reservation) (int64, error) {
	query := `
		INSERT INTO reservations (room_number, guest_name, guest_id_document, guest_address, guest_occupation, guest_nationality, nights, check_in_date, check_out_date, paid, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING reservation_id;
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		reservation.RoomNumber,
		reservation.Guest.Name,
		reservation.Guest.IDDocument,
		reservation.Guest.Address,
		reservation.Guest.Occupation,
		reservation.Guest.Nationality,
		reservation.Nights,
		reservation.Period.CheckIn,
		reservation.Period.CheckOut,
		reservation.Paid,
		reservation.TotalCost,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reservation for room %d: %w", reservation.RoomNumber, err)
	}
	return id, nil
}

// DeleteReservation removes a ledger entry.
func (r *PgxReservationRepository) DeleteReservation(ctx context.Context, reservationID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", reservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReservationInTx removes a ledger entry within the transaction.
func (r *PgxReservationRepository) DeleteReservationInTx(ctx context.Context, tx pgx.Tx, reservationID int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", reservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
