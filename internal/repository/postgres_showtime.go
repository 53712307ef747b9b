package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var auditoriumID int

		err := tx.QueryRow(ctx, `SELECT id FROM auditoriums WHERE id = $1`, showtime.AuditoriumID).Scan(&auditoriumID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query := `
			INSERT INTO showtimes (id, auditorium_id, movie_id, start_time, end_time, base_price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`

		_, err = tx.Exec(ctx, query,
			showtime.ID,
			showtime.AuditoriumID,
			showtime.MovieID,
			showtime.StartTime,
			showtime.EndTime,
			decimalToNumeric(showtime.BasePrice),
		)
		if err != nil {
			return err
		}

		return materializeShowtimeSeats(ctx, tx, showtime.ID)
	})
}

func (p *PostgresShowtimeRepository) GetByID(ctx context.Context, id string) (*domain.Showtime, error) {
	query := `
		SELECT id, auditorium_id, movie_id, start_time, end_time, base_price
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime
	var basePrice pgtype.Numeric

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.AuditoriumID,
		&showtime.MovieID,
		&showtime.StartTime,
		&showtime.EndTime,
		&basePrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	showtime.BasePrice = numericToDecimal(basePrice)

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetUpcomingByAuditorium(
	ctx context.Context,
	auditoriumID int,
	now time.Time) ([]domain.Showtime, error) {

	query := `
		SELECT id, auditorium_id, movie_id, start_time, end_time, base_price
		FROM showtimes
		WHERE auditorium_id = $1 AND start_time > $2
		ORDER BY start_time
	`

	rows, err := p.db.Query(ctx, query, auditoriumID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime
		var basePrice pgtype.Numeric

		err = rows.Scan(
			&showtime.ID,
			&showtime.AuditoriumID,
			&showtime.MovieID,
			&showtime.StartTime,
			&showtime.EndTime,
			&basePrice,
		)
		if err != nil {
			return nil, err
		}

		showtime.BasePrice = numericToDecimal(basePrice)
		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
