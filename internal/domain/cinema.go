package domain

import (
	"context"
	"time"
)

type Cinema struct {
	ID          int
	Name        string
	Address     string
	District    string
	City        string
	Phone       string
	Images      []string
	Auditoriums []Auditorium
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CinemaRepository interface {
	// Create persists the cinema together with any initial auditoriums and
	// their generated seats as one unit.
	Create(ctx context.Context, cinema *Cinema) error
	GetByID(ctx context.Context, id int) (*Cinema, error)
	GetAll(ctx context.Context, city string, pagination Pagination) ([]Cinema, *Metadata, error)
	Update(ctx context.Context, cinema *Cinema) error
	Delete(ctx context.Context, id int) error
	AppendImage(ctx context.Context, id int, imageURL string) error
}
