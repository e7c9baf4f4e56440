package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmsops/hotel_management_app/internal/apperrors"
	"github.com/hmsops/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hmsops/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// The room row embeds the current occupancy in nullable columns. A non-null
// guest_name marks the room occupied; the date columns stay independently
// nullable so a damaged record (occupant without dates) survives a round trip.
const roomColumns = `room_number, guest_name, guest_id_document, guest_address, guest_occupation, guest_nationality, nights, check_in_date, check_out_date, paid, total_cost`

type PgxRoomRepository struct {
	txManager
	pool *pgxpool.Pool
}

// NewPgxRoomRepository creates a new repository for room inventory data.
func NewPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryWithTx {
	return &PgxRoomRepository{txManager: txManager{pool: pool}, pool: pool}
}

// roomQuerier covers both pool and transaction handles.
type roomQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func scanRoom(row pgx.Row) (domain.Room, error) {
	var (
		room        domain.Room
		guestName   *string
		idDocument  *string
		address     *string
		occupation  *string
		nationality *string
		nights      *int
		checkIn     *time.Time
		checkOut    *time.Time
		paid        decimal.NullDecimal
		totalCost   decimal.NullDecimal
	)

	err := row.Scan(
		&room.RoomNumber,
		&guestName,
		&idDocument,
		&address,
		&occupation,
		&nationality,
		&nights,
		&checkIn,
		&checkOut,
		&paid,
		&totalCost,
	)
	if err != nil {
		return domain.Room{}, err
	}

	if guestName != nil {
		stay := domain.Stay{
			Guest: domain.Guest{Name: *guestName},
		}
		if idDocument != nil {
			stay.Guest.IDDocument = *idDocument
		}
		if address != nil {
			stay.Guest.Address = *address
		}
		if occupation != nil {
			stay.Guest.Occupation = *occupation
		}
		if nationality != nil {
			stay.Guest.Nationality = *nationality
		}
		if nights != nil {
			stay.Nights = *nights
		}
		if checkIn != nil && checkOut != nil {
			stay.Period = domain.DateRange{
				CheckIn:  domain.DateOnly(*checkIn),
				CheckOut: domain.DateOnly(*checkOut),
			}
		}
		if paid.Valid {
			stay.Paid = paid.Decimal
		}
		if totalCost.Valid {
			stay.TotalCost = totalCost.Decimal
		}
		room.Occupant = &stay
	}

	return room, nil
}

func findRoomByNumber(ctx context.Context, q roomQuerier, roomNumber int, forUpdate bool) (*domain.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE room_number = $1`, roomColumns)
	if forUpdate {
		query += ` FOR UPDATE`
	}

	room, err := scanRoom(q.QueryRow(ctx, query, roomNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room %d: %w", roomNumber, err)
	}
	return &room, nil
}

func setOccupant(ctx context.Context, q roomQuerier, roomNumber int, occupant *domain.Stay) error {
	query := `
		UPDATE rooms
		SET guest_name = $2, guest_id_document = $3, guest_address = $4,
			guest_occupation = $5, guest_nationality = $6, nights = $7,
			check_in_date = $8, check_out_date = $9, paid = $10, total_cost = $11
		WHERE room_number = $1;
	`

	var (
		guestName   *string
		idDocument  *string
		address     *string
		occupation  *string
		nationality *string
		nights      *int
		checkIn     *time.Time
		checkOut    *time.Time
		paid        decimal.NullDecimal
		totalCost   decimal.NullDecimal
	)
	if occupant != nil {
		guestName = &occupant.Guest.Name
		idDocument = &occupant.Guest.IDDocument
		address = &occupant.Guest.Address
		occupation = &occupant.Guest.Occupation
		nationality = &occupant.Guest.Nationality
		nights = &occupant.Nights
		if !occupant.Period.IsZero() {
			checkIn = &occupant.Period.CheckIn
			checkOut = &occupant.Period.CheckOut
		}
		paid = decimal.NewNullDecimal(occupant.Paid)
		totalCost = decimal.NewNullDecimal(occupant.TotalCost)
	}

	tag, err := q.Exec(ctx, query,
		roomNumber,
		guestName,
		idDocument,
		address,
		occupation,
		nationality,
		nights,
		checkIn,
		checkOut,
		paid,
		totalCost,
	)
	if err != nil {
		return fmt.Errorf("failed to update occupancy of room %d: %w", roomNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRoomByNumber retrieves a room with its current occupancy, if any.
func (r *PgxRoomRepository) FindRoomByNumber(ctx context.Context, roomNumber int) (*domain.Room, error) {
	return findRoomByNumber(ctx, r.pool, roomNumber, false)
}

// FindRoomByNumberForUpdate loads a room and locks its row until the
// transaction ends.
func (r *PgxRoomRepository) FindRoomByNumberForUpdate(ctx context.Context, tx pgx.Tx, roomNumber int) (*domain.Room, error) {
	return findRoomByNumber(ctx, tx, roomNumber, true)
}

// ListRooms retrieves the full inventory ordered by room number.
func (r *PgxRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms ORDER BY room_number`, roomColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Room, error) {
		return scanRoom(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rooms: %w", err)
	}
	return rooms, nil
}

// SetOccupant replaces the room's occupancy. A nil stay clears the room.
func (r *PgxRoomRepository) SetOccupant(ctx context.Context, roomNumber int, occupant *domain.Stay) error {
	return setOccupant(ctx, r.pool, roomNumber, occupant)
}

// SetOccupantInTx replaces the room's occupancy within the transaction.
func (r *PgxRoomRepository) SetOccupantInTx(ctx context.Context, tx pgx.Tx, roomNumber int, occupant *domain.Stay) error {
	return setOccupant(ctx, tx, roomNumber, occupant)
}
