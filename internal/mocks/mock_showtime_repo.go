package mocks

import (
	"context"
	"time"

	"github.com/cinex/cinema-service/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	CreateFunc                  func(ctx context.Context, showtime *domain.Showtime) error
	GetByIDFunc                 func(ctx context.Context, id string) (*domain.Showtime, error)
	GetUpcomingByAuditoriumFunc func(ctx context.Context, auditoriumID int, now time.Time) ([]domain.Showtime, error)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) GetByID(ctx context.Context, id string) (*domain.Showtime, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockShowtimeRepo) GetUpcomingByAuditorium(ctx context.Context, auditoriumID int, now time.Time) ([]domain.Showtime, error) {
	return m.GetUpcomingByAuditoriumFunc(ctx, auditoriumID, now)
}
