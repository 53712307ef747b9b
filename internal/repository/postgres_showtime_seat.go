package repository

import (
	"context"
	"errors"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresShowtimeSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeSeatRepository(db *pgxpool.Pool) *PostgresShowtimeSeatRepository {
	return &PostgresShowtimeSeatRepository{
		db: db,
	}
}

func (p *PostgresShowtimeSeatRepository) MaterializeForShowtime(ctx context.Context, showtimeID string) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return materializeShowtimeSeats(ctx, tx, showtimeID)
	})
}

// materializeShowtimeSeats creates one AVAILABLE row per current seat of
// the showtime's auditorium, priced at the showtime's base price. The
// composite primary key makes a repeat call fail instead of duplicating.
func materializeShowtimeSeats(ctx context.Context, tx pgx.Tx, showtimeID string) error {
	query := `
		INSERT INTO showtime_seats (showtime_id, seat_id, status, price)
		SELECT sh.id, se.id, $2, sh.base_price
		FROM showtimes sh
		JOIN seats se ON se.auditorium_id = sh.auditorium_id
		WHERE sh.id = $1
	`

	tag, err := tx.Exec(ctx, query, showtimeID, domain.SeatStatusAvailable)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatStateExists
		}

		return err
	}

	// Every valid pattern generates at least one seat, so zero inserted
	// rows means the showtime does not exist.
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// rebuildShowtimeSeats replaces a showtime's seat state with fresh rows
// for the supplied seat set: status AVAILABLE, price copied from the
// showtime's current base price, no booking. Used by the layout rebuild
// with the newly generated seats so it does not re-read them.
func rebuildShowtimeSeats(
	ctx context.Context,
	tx pgx.Tx,
	showtime domain.Showtime,
	seats []domain.Seat) error {

	_, err := tx.Exec(ctx, `DELETE FROM showtime_seats WHERE showtime_id = $1`, showtime.ID)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, []any{
			showtime.ID,
			seat.ID,
			int(domain.SeatStatusAvailable),
			decimalToNumeric(showtime.BasePrice),
		})
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"showtime_seats"},
		[]string{"showtime_id", "seat_id", "status", "price"},
		pgx.CopyFromRows(rows),
	)

	return err
}

func (p *PostgresShowtimeSeatRepository) GetByShowtime(ctx context.Context, showtimeID string) ([]domain.SeatMapEntry, error) {
	query := `
		SELECT se.id, se.auditorium_id, se.label, se.seat_row, se.seat_col, se.seat_type, se.is_active,
			ss.status, ss.price
		FROM showtime_seats ss
		JOIN seats se ON se.id = ss.seat_id
		WHERE ss.showtime_id = $1
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.SeatMapEntry, 0)

	for rows.Next() {
		var entry domain.SeatMapEntry
		var price pgtype.Numeric

		err = rows.Scan(
			&entry.ID,
			&entry.AuditoriumID,
			&entry.Label,
			&entry.Row,
			&entry.Col,
			&entry.Type,
			&entry.Active,
			&entry.Status,
			&price,
		)
		if err != nil {
			return nil, err
		}

		entry.Price = numericToDecimal(price)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (p *PostgresShowtimeSeatRepository) BookSeats(
	ctx context.Context,
	showtimeID string,
	seatIDs []int,
	bookingID string) (decimal.Decimal, error) {

	total := decimal.Zero

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE showtime_seats
			SET status = $1, booking_id = $2
			WHERE showtime_id = $3 AND seat_id = ANY($4) AND status = $5
			RETURNING price
		`

		rows, err := tx.Query(ctx, query,
			domain.SeatStatusBooked, bookingID, showtimeID, seatIDs, domain.SeatStatusAvailable)
		if err != nil {
			return err
		}
		defer rows.Close()

		booked := 0

		for rows.Next() {
			var price pgtype.Numeric

			if err := rows.Scan(&price); err != nil {
				return err
			}

			total = total.Add(numericToDecimal(price))
			booked++
		}

		if err = rows.Err(); err != nil {
			return err
		}

		// Rolling back here keeps all-or-nothing semantics: a booking
		// never takes a subset of the requested seats.
		if booked != len(seatIDs) {
			return domain.ErrSeatAlreadyTaken
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (p *PostgresShowtimeSeatRepository) ReleaseSeats(ctx context.Context, showtimeID, bookingID string) error {
	query := `
		UPDATE showtime_seats
		SET status = $1, booking_id = NULL
		WHERE showtime_id = $2 AND booking_id = $3
	`

	tag, err := p.db.Exec(ctx, query, domain.SeatStatusAvailable, showtimeID, bookingID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}
