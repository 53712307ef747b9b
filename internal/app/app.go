package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cinex/cinema-service/internal/auth"
	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/media"
	"github.com/cinex/cinema-service/internal/queue"
	"github.com/cinex/cinema-service/internal/repository"
	appvalidator "github.com/cinex/cinema-service/internal/validator"
	"github.com/cinex/cinema-service/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	version = vcs.Version()
)

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	AMQPUrl          string
	JWTSecret        string
	MediaServiceUrl  string
	OtelCollectorUrl string
}

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	events    *queue.Publisher

	authProvider domain.AuthProvider
	mediaStore   domain.MediaStore

	cinemaRepo       domain.CinemaRepository
	auditoriumRepo   domain.AuditoriumRepository
	showtimeRepo     domain.ShowtimeRepository
	showtimeSeatRepo domain.ShowtimeSeatRepository
	ledger           domain.Ledger
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.AMQPUrl, "amqp-url", "", "RabbitMQ URL (empty disables event publishing)")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "", "HMAC secret shared with the auth service")
	flag.StringVar(&cfg.MediaServiceUrl, "media-service-url", "http://localhost:8081", "Image service base URL")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logHandler := slog.Handler(slog.NewTextHandler(os.Stdout, nil))
	if cfg.OtelCollectorUrl != "" {
		logHandler = NewMultiHandler(logHandler, otelslog.NewHandler(serviceName))
	}
	logger := slog.New(logHandler)

	app, err := NewApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

// NewApplication wires the storage pools, external collaborators and
// repositories from configuration.
func NewApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	var events *queue.Publisher
	if cfg.AMQPUrl != "" {
		events, err = queue.NewPublisher(cfg.AMQPUrl, logger)
		if err != nil {
			db.Close()
			redisClient.Close()
			return nil, err
		}
	}

	app := &Application{
		config:           cfg,
		logger:           logger,
		db:               db,
		redis:            redisClient,
		validator:        appvalidator.NewValidator(),
		events:           events,
		authProvider:     auth.NewJWTAuthProvider(cfg.JWTSecret),
		mediaStore:       media.NewHTTPMediaStore(cfg.MediaServiceUrl),
		cinemaRepo:       repository.NewPostgresCinemaRepository(db),
		auditoriumRepo:   repository.NewPostgresAuditoriumRepository(db),
		showtimeRepo:     repository.NewPostgresShowtimeRepository(db),
		showtimeSeatRepo: repository.NewPostgresShowtimeSeatRepository(db),
		ledger:           repository.NewPostgresLedger(db),
	}

	return app, nil
}

func (app *Application) Close() {
	app.db.Close()

	if err := app.redis.Close(); err != nil {
		app.logger.Error("failed to close redis client", "error", err)
	}

	if err := app.events.Close(); err != nil {
		app.logger.Error("failed to close event publisher", "error", err)
	}
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
