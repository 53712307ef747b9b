package domain

import (
	"context"
	"time"

	"github.com/cinex/cinema-service/internal/layout"
)

// Auditorium is a screening hall owned by exactly one cinema. Its seat
// set is always the generation result of its current pattern: the two
// are only ever written together, inside one transaction.
type Auditorium struct {
	ID       int
	CinemaID int
	Name     string
	Pattern  layout.Pattern
	Seats    []Seat
}

type Seat struct {
	ID           int
	AuditoriumID int
	Label        string
	Row          int
	Col          int
	Type         layout.SeatType
	Active       bool
}

// RebuildResult reports what a completed layout rebuild touched.
type RebuildResult struct {
	Pattern          layout.Pattern
	SeatCount        int
	RebuiltShowtimes []string
}

type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *Auditorium) error
	GetWithSeats(ctx context.Context, id int) (*Auditorium, error)
	GetAllByCinema(ctx context.Context, cinemaID int) ([]Auditorium, error)

	// Delete removes the auditorium and its seats. It refuses with
	// ErrUpcomingShowtimes while any showtime with a start time after now
	// still references the auditorium.
	Delete(ctx context.Context, id int, now time.Time) error

	// UpdateSeatLayout applies a pattern change: it regenerates the seat
	// set and rebuilds the seat state of every showtime starting strictly
	// after now, all within a single transaction. Showtimes at or before
	// now keep the snapshot they were sold under. Existing bookings on
	// rebuilt showtimes lose their seat state; callers own that decision.
	UpdateSeatLayout(ctx context.Context, id int, pattern layout.Pattern, now time.Time) (*RebuildResult, error)
}
