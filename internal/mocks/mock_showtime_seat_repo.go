package mocks

import (
	"context"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/shopspring/decimal"
)

type MockShowtimeSeatRepo struct {
	domain.ShowtimeSeatRepository
	MaterializeForShowtimeFunc func(ctx context.Context, showtimeID string) error
	GetByShowtimeFunc          func(ctx context.Context, showtimeID string) ([]domain.SeatMapEntry, error)
	BookSeatsFunc              func(ctx context.Context, showtimeID string, seatIDs []int, bookingID string) (decimal.Decimal, error)
	ReleaseSeatsFunc           func(ctx context.Context, showtimeID, bookingID string) error
}

func (m *MockShowtimeSeatRepo) MaterializeForShowtime(ctx context.Context, showtimeID string) error {
	return m.MaterializeForShowtimeFunc(ctx, showtimeID)
}

func (m *MockShowtimeSeatRepo) GetByShowtime(ctx context.Context, showtimeID string) ([]domain.SeatMapEntry, error) {
	return m.GetByShowtimeFunc(ctx, showtimeID)
}

func (m *MockShowtimeSeatRepo) BookSeats(ctx context.Context, showtimeID string, seatIDs []int, bookingID string) (decimal.Decimal, error) {
	return m.BookSeatsFunc(ctx, showtimeID, seatIDs, bookingID)
}

func (m *MockShowtimeSeatRepo) ReleaseSeats(ctx context.Context, showtimeID, bookingID string) error {
	return m.ReleaseSeatsFunc(ctx, showtimeID, bookingID)
}
