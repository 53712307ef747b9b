package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/cinex/cinema-service/internal/app"
	"github.com/cinex/cinema-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// TestApp bundles the application under test with a direct database
// pool and repositories for seeding and state assertions.
type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Redis *redis.Client

	CinemaRepo     *repository.PostgresCinemaRepository
	AuditoriumRepo *repository.PostgresAuditoriumRepository
	ShowtimeRepo   *repository.PostgresShowtimeRepository
	SeatStateRepo  *repository.PostgresShowtimeSeatRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	return &TestApp{
		App:            application,
		DB:             db,
		Redis:          redisClient,
		CinemaRepo:     repository.NewPostgresCinemaRepository(db),
		AuditoriumRepo: repository.NewPostgresAuditoriumRepository(db),
		ShowtimeRepo:   repository.NewPostgresShowtimeRepository(db),
		SeatStateRepo:  repository.NewPostgresShowtimeSeatRepository(db),
	}, nil
}
