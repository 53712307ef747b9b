package repository

import (
	"context"
	"errors"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) error {
	// Generate everything up front so an unknown pattern fails before the
	// transaction opens.
	descriptors := make([][]layout.SeatDescriptor, len(cinema.Auditoriums))

	for i, auditorium := range cinema.Auditoriums {
		generated, err := layout.Generate(auditorium.Pattern)
		if err != nil {
			return err
		}

		descriptors[i] = generated
	}

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO cinemas (name, address, district, city, phone, images)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			cinema.Name,
			cinema.Address,
			cinema.District,
			cinema.City,
			cinema.Phone,
			cinema.Images,
		).Scan(&cinema.ID, &cinema.CreatedAt, &cinema.UpdatedAt)
		if err != nil {
			return err
		}

		for i := range cinema.Auditoriums {
			cinema.Auditoriums[i].CinemaID = cinema.ID

			if err := createAuditorium(ctx, tx, &cinema.Auditoriums[i], descriptors[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (p *PostgresCinemaRepository) GetByID(ctx context.Context, id int) (*domain.Cinema, error) {
	query := `
		SELECT id, name, address, district, city, phone, images, created_at, updated_at
		FROM cinemas
		WHERE id = $1
	`

	var cinema domain.Cinema

	err := p.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.District,
		&cinema.City,
		&cinema.Phone,
		&cinema.Images,
		&cinema.CreatedAt,
		&cinema.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT id, cinema_id, name, pattern
		FROM auditoriums
		WHERE cinema_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var auditorium domain.Auditorium

		err = rows.Scan(&auditorium.ID, &auditorium.CinemaID, &auditorium.Name, &auditorium.Pattern)
		if err != nil {
			return nil, err
		}

		cinema.Auditoriums = append(cinema.Auditoriums, auditorium)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &cinema, nil
}

func (p *PostgresCinemaRepository) GetAll(
	ctx context.Context,
	city string,
	pagination domain.Pagination) ([]domain.Cinema, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, name, address, district, city, phone, images, created_at, updated_at
		FROM cinemas
		WHERE $1 = '' OR LOWER(city) = LOWER($1)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, city, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cinemas := make([]domain.Cinema, 0, pagination.PageSize)
	totalRecords := 0

	for rows.Next() {
		var cinema domain.Cinema

		err = rows.Scan(
			&totalRecords,
			&cinema.ID,
			&cinema.Name,
			&cinema.Address,
			&cinema.District,
			&cinema.City,
			&cinema.Phone,
			&cinema.Images,
			&cinema.CreatedAt,
			&cinema.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		cinemas = append(cinemas, cinema)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return cinemas, metadata, nil
}

func (p *PostgresCinemaRepository) Update(ctx context.Context, cinema *domain.Cinema) error {
	query := `
		UPDATE cinemas
		SET name = $1, address = $2, district = $3, city = $4, phone = $5, images = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := p.db.Exec(ctx, query,
		cinema.Name,
		cinema.Address,
		cinema.District,
		cinema.City,
		cinema.Phone,
		cinema.Images,
		cinema.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresCinemaRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM cinemas WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresCinemaRepository) AppendImage(ctx context.Context, id int, imageURL string) error {
	query := `
		UPDATE cinemas
		SET images = array_append(images, $1), updated_at = NOW()
		WHERE id = $2
	`

	tag, err := p.db.Exec(ctx, query, imageURL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
