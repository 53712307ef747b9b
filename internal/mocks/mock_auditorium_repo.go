package mocks

import (
	"context"
	"time"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
)

type MockAuditoriumRepo struct {
	domain.AuditoriumRepository
	CreateFunc           func(ctx context.Context, auditorium *domain.Auditorium) error
	GetWithSeatsFunc     func(ctx context.Context, id int) (*domain.Auditorium, error)
	GetAllByCinemaFunc   func(ctx context.Context, cinemaID int) ([]domain.Auditorium, error)
	DeleteFunc           func(ctx context.Context, id int, now time.Time) error
	UpdateSeatLayoutFunc func(ctx context.Context, id int, pattern layout.Pattern, now time.Time) (*domain.RebuildResult, error)
}

func (m *MockAuditoriumRepo) Create(ctx context.Context, auditorium *domain.Auditorium) error {
	return m.CreateFunc(ctx, auditorium)
}

func (m *MockAuditoriumRepo) GetWithSeats(ctx context.Context, id int) (*domain.Auditorium, error) {
	return m.GetWithSeatsFunc(ctx, id)
}

func (m *MockAuditoriumRepo) GetAllByCinema(ctx context.Context, cinemaID int) ([]domain.Auditorium, error) {
	return m.GetAllByCinemaFunc(ctx, cinemaID)
}

func (m *MockAuditoriumRepo) Delete(ctx context.Context, id int, now time.Time) error {
	return m.DeleteFunc(ctx, id, now)
}

func (m *MockAuditoriumRepo) UpdateSeatLayout(ctx context.Context, id int, pattern layout.Pattern, now time.Time) (*domain.RebuildResult, error) {
	return m.UpdateSeatLayoutFunc(ctx, id, pattern, now)
}
