package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUpcomingShowtimes = errors.New("auditorium still has upcoming showtimes")
	ErrSeatStateExists   = errors.New("seat state already materialized for showtime")
	ErrSeatAlreadyTaken  = errors.New("seat(s) are no longer available")
	ErrBookingNotFound   = errors.New("no booked seats found for booking")
)
