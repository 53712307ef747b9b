package mocks

import (
	"context"

	"github.com/cinex/cinema-service/internal/domain"
)

type MockCinemaRepo struct {
	domain.CinemaRepository
	CreateFunc      func(ctx context.Context, cinema *domain.Cinema) error
	GetByIDFunc     func(ctx context.Context, id int) (*domain.Cinema, error)
	GetAllFunc      func(ctx context.Context, city string, pagination domain.Pagination) ([]domain.Cinema, *domain.Metadata, error)
	UpdateFunc      func(ctx context.Context, cinema *domain.Cinema) error
	DeleteFunc      func(ctx context.Context, id int) error
	AppendImageFunc func(ctx context.Context, id int, imageURL string) error
}

func (m *MockCinemaRepo) Create(ctx context.Context, cinema *domain.Cinema) error {
	return m.CreateFunc(ctx, cinema)
}

func (m *MockCinemaRepo) GetByID(ctx context.Context, id int) (*domain.Cinema, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockCinemaRepo) GetAll(ctx context.Context, city string, pagination domain.Pagination) ([]domain.Cinema, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, city, pagination)
}

func (m *MockCinemaRepo) Update(ctx context.Context, cinema *domain.Cinema) error {
	return m.UpdateFunc(ctx, cinema)
}

func (m *MockCinemaRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockCinemaRepo) AppendImage(ctx context.Context, id int, imageURL string) error {
	return m.AppendImageFunc(ctx, id, imageURL)
}
