package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingReleased  BookingStatus = "RELEASED"
)

// Booking is the ledger record of a completed booking. The booking
// protocol itself lives in the booking service; this side only records
// outcomes for reporting.
type Booking struct {
	ID         string
	ShowtimeID string
	TotalPrice decimal.Decimal
	Status     BookingStatus
	CreatedAt  time.Time
}

type Ledger interface {
	Record(ctx context.Context, booking Booking) error
	UpdateStatus(ctx context.Context, bookingID string, status BookingStatus) error
}
