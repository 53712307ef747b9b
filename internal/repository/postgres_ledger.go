package repository

import (
	"context"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLedger records completed bookings for the reporting
// collaborator. Aggregation over these rows happens elsewhere.
type PostgresLedger struct {
	db *pgxpool.Pool
}

func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{
		db: db,
	}
}

func (p *PostgresLedger) Record(ctx context.Context, booking domain.Booking) error {
	query := `
		INSERT INTO bookings (id, showtime_id, total_price, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.db.Exec(ctx, query,
		booking.ID,
		booking.ShowtimeID,
		decimalToNumeric(booking.TotalPrice),
		booking.Status,
	)

	return err
}

func (p *PostgresLedger) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	tag, err := p.db.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, bookingID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}
