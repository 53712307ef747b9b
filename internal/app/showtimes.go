package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cinex/cinema-service/api"
	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/queue"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Seat maps are cached briefly to absorb the read burst when a popular
// showtime opens. Every seat state mutation invalidates the key.
const seatMapCacheTTL = 30 * time.Second

func seatMapCacheKey(showtimeID string) string {
	return "seatmap:" + showtimeID
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShowtimeRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime := &domain.Showtime{
		ID:           uuid.NewString(),
		AuditoriumID: req.AuditoriumId,
		MovieID:      req.MovieId,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BasePrice:    req.BasePrice,
	}

	err = app.showtimeRepo.Create(r.Context(), showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	event := queue.SeatsMaterializedEvent{
		ShowtimeID:     showtime.ID,
		AuditoriumID:   showtime.AuditoriumID,
		MaterializedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_ = app.events.Publish(r.Context(), queue.QueueSeatsMaterialized, event)

	resp := api.ShowtimeResponse{
		Id:           showtime.ID,
		AuditoriumId: showtime.AuditoriumID,
		MovieId:      showtime.MovieID,
		StartTime:    showtime.StartTime,
		EndTime:      showtime.EndTime,
		BasePrice:    showtime.BasePrice,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readUUIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	cacheKey := seatMapCacheKey(showtimeID)

	cached, err := app.redis.Get(r.Context(), cacheKey).Bytes()
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}
	if !errors.Is(err, redis.Nil) {
		app.contextGetLogger(r).Warn("seat map cache read failed", "error", err)
	}

	entries, err := app.showtimeSeatRepo.GetByShowtime(r.Context(), showtimeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Every showtime is materialized at creation, so an empty seat state
	// means the showtime itself does not exist.
	if len(entries) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	resp := toSeatMapResponse(showtimeID, entries)

	js, err := json.Marshal(resp)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.redis.Set(r.Context(), cacheKey, js, seatMapCacheTTL).Err()
	if err != nil {
		app.contextGetLogger(r).Warn("seat map cache write failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readUUIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.CreateBookingRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if _, err := app.showtimeRepo.GetByID(r.Context(), showtimeID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	bookingID := uuid.NewString()

	total, err := app.showtimeSeatRepo.BookSeats(r.Context(), showtimeID, req.SeatIds, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	booking := domain.Booking{
		ID:         bookingID,
		ShowtimeID: showtimeID,
		TotalPrice: total,
		Status:     domain.BookingConfirmed,
	}

	err = app.ledger.Record(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	claims := app.contextGetClaims(r)
	app.contextGetLogger(r).Info("seats booked",
		"showtime_id", showtimeID,
		"booking_id", bookingID,
		"user_id", claims.UserID,
		"seats", len(req.SeatIds),
	)

	app.invalidateSeatMaps(r, []string{showtimeID})

	resp := api.BookingResponse{
		Id:         bookingID,
		ShowtimeId: showtimeID,
		TotalPrice: total,
		Status:     string(domain.BookingConfirmed),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReleaseBooking(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readUUIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showtimeSeatRepo.ReleaseSeats(r.Context(), showtimeID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.ledger.UpdateStatus(r.Context(), bookingID, domain.BookingReleased)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.invalidateSeatMaps(r, []string{showtimeID})

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) invalidateSeatMaps(r *http.Request, showtimeIDs []string) {
	if len(showtimeIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(showtimeIDs))
	for _, id := range showtimeIDs {
		keys = append(keys, seatMapCacheKey(id))
	}

	err := app.redis.Del(r.Context(), keys...).Err()
	if err != nil {
		app.contextGetLogger(r).Warn("seat map cache invalidation failed", "error", err)
	}
}

func toSeatMapResponse(showtimeID string, entries []domain.SeatMapEntry) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		ShowtimeId: showtimeID,
		SeatRows:   []api.ShowtimeSeatRow{},
	}

	for _, e := range entries {
		seat := api.ShowtimeSeat{
			Id:        e.ID,
			Label:     e.Label,
			Row:       e.Row,
			Column:    e.Col,
			Type:      string(e.Type),
			Price:     e.Price,
			Available: e.Status == domain.SeatStatusAvailable,
		}

		if len(resp.SeatRows) == 0 || resp.SeatRows[len(resp.SeatRows)-1].Row != e.Row {
			resp.SeatRows = append(resp.SeatRows, api.ShowtimeSeatRow{Row: e.Row})
		}

		last := &resp.SeatRows[len(resp.SeatRows)-1]
		last.Seats = append(last.Seats, seat)
	}

	return resp
}
