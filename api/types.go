// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateAuditoriumRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Pattern string `json:"pattern" validate:"required,pattern"`
}

type CreateCinemaRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	Address     string                    `json:"address" validate:"required,max=300"`
	District    string                    `json:"district" validate:"required,max=100"`
	City        string                    `json:"city" validate:"required,max=100"`
	Phone       string                    `json:"phone" validate:"required,max=20"`
	Auditoriums []CreateAuditoriumRequest `json:"auditoriums" validate:"dive"`
}

type UpdateCinemaRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Address  *string `json:"address" validate:"omitempty,max=300"`
	District *string `json:"district" validate:"omitempty,max=100"`
	City     *string `json:"city" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type UpdatePatternRequest struct {
	Pattern string `json:"pattern" validate:"required,pattern"`
}

type AuditoriumSummary struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type CinemaResponse struct {
	Id          int                 `json:"id"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	District    string              `json:"district"`
	City        string              `json:"city"`
	Phone       string              `json:"phone"`
	Images      []string            `json:"images"`
	Auditoriums []AuditoriumSummary `json:"auditoriums,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type CinemaListResponse struct {
	Cinemas  []CinemaResponse `json:"cinemas"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type Seat struct {
	Id     int    `json:"id"`
	Label  string `json:"label"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type AuditoriumResponse struct {
	Id       int       `json:"id"`
	CinemaId int       `json:"cinemaId"`
	Name     string    `json:"name"`
	Pattern  string    `json:"pattern"`
	SeatRows []SeatRow `json:"seatRows,omitempty"`
}

type RebuildResponse struct {
	AuditoriumId     int      `json:"auditoriumId"`
	Pattern          string   `json:"pattern"`
	SeatCount        int      `json:"seatCount"`
	RebuiltShowtimes []string `json:"rebuiltShowtimes"`
}

type CreateShowtimeRequest struct {
	AuditoriumId int             `json:"auditoriumId" validate:"required,gt=0"`
	MovieId      int             `json:"movieId" validate:"required,gt=0"`
	StartTime    time.Time       `json:"startTime" validate:"required"`
	EndTime      time.Time       `json:"endTime" validate:"required,gtfield=StartTime"`
	BasePrice    decimal.Decimal `json:"basePrice" validate:"required"`
}

type ShowtimeResponse struct {
	Id           string          `json:"id"`
	AuditoriumId int             `json:"auditoriumId"`
	MovieId      int             `json:"movieId"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	BasePrice    decimal.Decimal `json:"basePrice"`
}

type ShowtimeSeat struct {
	Id        int             `json:"id"`
	Label     string          `json:"label"`
	Row       int             `json:"row"`
	Column    int             `json:"column"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type ShowtimeSeatRow struct {
	Row   int            `json:"row"`
	Seats []ShowtimeSeat `json:"seats"`
}

type SeatMapResponse struct {
	ShowtimeId string            `json:"showtimeId"`
	SeatRows   []ShowtimeSeatRow `json:"seatRows"`
}

type CreateBookingRequest struct {
	SeatIds []int `json:"seatIds" validate:"required,min=1,dive,gt=0"`
}

type BookingResponse struct {
	Id         string          `json:"id"`
	ShowtimeId string          `json:"showtimeId"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
}

type ImageUploadResponse struct {
	Url string `json:"url"`
}
