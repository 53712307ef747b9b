package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID           string
	AuditoriumID int
	MovieID      int
	StartTime    time.Time
	EndTime      time.Time
	BasePrice    decimal.Decimal
}

// SeatStatus is the occupancy state of one showtime seat. The values are
// shared with the booking subsystem; everything beyond "available" is
// opaque to this service and only ever reset, never interpreted.
type SeatStatus int

const (
	SeatStatusAvailable SeatStatus = 0
	SeatStatusLocked    SeatStatus = 1
	SeatStatusBooked    SeatStatus = 2
)

// ShowtimeSeat is the per-showtime projection of a physical seat. Its
// price is copied from the showtime's base price when the row is created
// and is independent of later base-price edits.
type ShowtimeSeat struct {
	ShowtimeID string
	SeatID     int
	Status     SeatStatus
	Price      decimal.Decimal
	BookingID  *string
}

// SeatMapEntry joins a showtime seat with its physical seat for display.
type SeatMapEntry struct {
	Seat
	Status SeatStatus
	Price  decimal.Decimal
}

type ShowtimeRepository interface {
	// Create persists the showtime and materializes its seat state, one
	// AVAILABLE row per current seat of the auditorium, in one transaction.
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id string) (*Showtime, error)
	GetUpcomingByAuditorium(ctx context.Context, auditoriumID int, now time.Time) ([]Showtime, error)
}

type ShowtimeSeatRepository interface {
	// MaterializeForShowtime creates one AVAILABLE row per current seat of
	// the showtime's auditorium. Calling it again for the same showtime
	// fails with ErrSeatStateExists; it never duplicates rows.
	MaterializeForShowtime(ctx context.Context, showtimeID string) error

	GetByShowtime(ctx context.Context, showtimeID string) ([]SeatMapEntry, error)

	// BookSeats flips the given seats from AVAILABLE to BOOKED under the
	// booking id, failing with ErrSeatAlreadyTaken if any of them is not
	// available. ReleaseSeats reverses it. Both only touch status and
	// booking id, never the row set itself.
	BookSeats(ctx context.Context, showtimeID string, seatIDs []int, bookingID string) (decimal.Decimal, error)
	ReleaseSeats(ctx context.Context, showtimeID, bookingID string) error
}
