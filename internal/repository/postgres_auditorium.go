package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresAuditoriumRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAuditoriumRepository(db *pgxpool.Pool) *PostgresAuditoriumRepository {
	return &PostgresAuditoriumRepository{
		db: db,
	}
}

func (p *PostgresAuditoriumRepository) Create(ctx context.Context, auditorium *domain.Auditorium) error {
	descriptors, err := layout.Generate(auditorium.Pattern)
	if err != nil {
		return err
	}

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var cinemaID int

		err := tx.QueryRow(ctx, `SELECT id FROM cinemas WHERE id = $1`, auditorium.CinemaID).Scan(&cinemaID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		return createAuditorium(ctx, tx, auditorium, descriptors)
	})
}

// createAuditorium inserts the auditorium row and its generated seats.
// Callers must already hold a transaction; the two writes never commit
// separately.
func createAuditorium(
	ctx context.Context,
	tx pgx.Tx,
	auditorium *domain.Auditorium,
	descriptors []layout.SeatDescriptor) error {

	query := `
		INSERT INTO auditoriums (cinema_id, name, pattern)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, auditorium.CinemaID, auditorium.Name, auditorium.Pattern).Scan(&auditorium.ID)
	if err != nil {
		return err
	}

	seats, err := insertSeats(ctx, tx, auditorium.ID, descriptors)
	if err != nil {
		return err
	}

	auditorium.Seats = seats

	return nil
}

// insertSeats bulk-inserts one generated seat set and returns it with
// assigned ids, in generation order.
func insertSeats(
	ctx context.Context,
	tx pgx.Tx,
	auditoriumID int,
	descriptors []layout.SeatDescriptor) ([]domain.Seat, error) {

	labels := make([]string, len(descriptors))
	rowNums := make([]int, len(descriptors))
	colNums := make([]int, len(descriptors))
	types := make([]string, len(descriptors))

	for i, d := range descriptors {
		labels[i] = d.Label
		rowNums[i] = d.Row
		colNums[i] = d.Col
		types[i] = string(d.Type)
	}

	query := `
		INSERT INTO seats (auditorium_id, label, seat_row, seat_col, seat_type, is_active)
		SELECT $1, label, seat_row, seat_col, seat_type, true
		FROM unnest($2::text[], $3::int[], $4::int[], $5::text[])
			AS t(label, seat_row, seat_col, seat_type)
		RETURNING id
	`

	rows, err := tx.Query(ctx, query, auditoriumID, labels, rowNums, colNums, types)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0, len(descriptors))
	i := 0

	for rows.Next() {
		var id int

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		d := descriptors[i]
		seats = append(seats, domain.Seat{
			ID:           id,
			AuditoriumID: auditoriumID,
			Label:        d.Label,
			Row:          d.Row,
			Col:          d.Col,
			Type:         d.Type,
			Active:       true,
		})
		i++
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresAuditoriumRepository) GetWithSeats(ctx context.Context, id int) (*domain.Auditorium, error) {
	query := `
		SELECT id, cinema_id, name, pattern
		FROM auditoriums
		WHERE id = $1
	`

	var auditorium domain.Auditorium

	err := p.db.QueryRow(ctx, query, id).Scan(
		&auditorium.ID,
		&auditorium.CinemaID,
		&auditorium.Name,
		&auditorium.Pattern,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT id, auditorium_id, label, seat_row, seat_col, seat_type, is_active
		FROM seats
		WHERE auditorium_id = $1
		ORDER BY seat_row, seat_col
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.AuditoriumID,
			&seat.Label,
			&seat.Row,
			&seat.Col,
			&seat.Type,
			&seat.Active,
		)
		if err != nil {
			return nil, err
		}

		auditorium.Seats = append(auditorium.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &auditorium, nil
}

func (p *PostgresAuditoriumRepository) GetAllByCinema(ctx context.Context, cinemaID int) ([]domain.Auditorium, error) {
	var cinema int

	err := p.db.QueryRow(ctx, `SELECT id FROM cinemas WHERE id = $1`, cinemaID).Scan(&cinema)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query := `
		SELECT id, cinema_id, name, pattern
		FROM auditoriums
		WHERE cinema_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, cinemaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auditoriums := make([]domain.Auditorium, 0)

	for rows.Next() {
		var auditorium domain.Auditorium

		err = rows.Scan(&auditorium.ID, &auditorium.CinemaID, &auditorium.Name, &auditorium.Pattern)
		if err != nil {
			return nil, err
		}

		auditoriums = append(auditoriums, auditorium)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return auditoriums, nil
}

func (p *PostgresAuditoriumRepository) Delete(ctx context.Context, id int, now time.Time) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var locked int

		err := tx.QueryRow(ctx, `SELECT id FROM auditoriums WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		var upcoming int

		query := `
			SELECT COUNT(*)
			FROM showtimes
			WHERE auditorium_id = $1 AND start_time > $2
		`

		err = tx.QueryRow(ctx, query, id, now).Scan(&upcoming)
		if err != nil {
			return err
		}

		if upcoming > 0 {
			return domain.ErrUpcomingShowtimes
		}

		_, err = tx.Exec(ctx, `DELETE FROM auditoriums WHERE id = $1`, id)

		return err
	})
}

// UpdateSeatLayout is the rebuild coordinator. All steps run inside one
// transaction with the auditorium row and its upcoming showtimes locked,
// so a reader never observes seats that disagree with the pattern, or a
// showtime whose seat state mixes old and new seat ids. Any failure
// rolls back the whole rebuild.
func (p *PostgresAuditoriumRepository) UpdateSeatLayout(
	ctx context.Context,
	id int,
	pattern layout.Pattern,
	now time.Time) (*domain.RebuildResult, error) {

	descriptors, err := layout.Generate(pattern)
	if err != nil {
		return nil, err
	}

	result := &domain.RebuildResult{
		Pattern:          pattern,
		SeatCount:        len(descriptors),
		RebuiltShowtimes: []string{},
	}

	err = runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var locked int

		err := tx.QueryRow(ctx, `SELECT id FROM auditoriums WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `UPDATE auditoriums SET pattern = $1 WHERE id = $2`, pattern, id)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM seats WHERE auditorium_id = $1`, id)
		if err != nil {
			return err
		}

		seats, err := insertSeats(ctx, tx, id, descriptors)
		if err != nil {
			return err
		}

		showtimes, err := lockUpcomingShowtimes(ctx, tx, id, now)
		if err != nil {
			return err
		}

		for _, showtime := range showtimes {
			if err := rebuildShowtimeSeats(ctx, tx, showtime, seats); err != nil {
				return err
			}

			result.RebuiltShowtimes = append(result.RebuiltShowtimes, showtime.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockUpcomingShowtimes selects the showtimes whose start time is
// strictly after now and locks them for the rest of the rebuild. A
// showtime starting exactly at now is not upcoming.
func lockUpcomingShowtimes(
	ctx context.Context,
	tx pgx.Tx,
	auditoriumID int,
	now time.Time) ([]domain.Showtime, error) {

	query := `
		SELECT id, auditorium_id, movie_id, start_time, end_time, base_price
		FROM showtimes
		WHERE auditorium_id = $1 AND start_time > $2
		ORDER BY start_time
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, auditoriumID, now)
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
