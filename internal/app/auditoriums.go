package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/cinex/cinema-service/api"
	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
	"github.com/cinex/cinema-service/internal/queue"
)

func (app *Application) GetAuditorium(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "auditoriumId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	auditorium, err := app.auditoriumRepo.GetWithSeats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toAuditoriumResponse(auditorium), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateAuditoriumPattern swaps the auditorium to a new seat layout and
// rebuilds the seat state of every upcoming showtime in one transaction.
// Past showtimes keep the seat snapshot they were sold under.
func (app *Application) UpdateAuditoriumPattern(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "auditoriumId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.UpdatePatternRequest

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

	pattern, err := layout.ParsePattern(req.Pattern)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	now := time.Now()

	result, err := app.auditoriumRepo.UpdateSeatLayout(r.Context(), id, pattern, now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger := app.contextGetLogger(r)
	logger.Info("auditorium layout rebuilt",
		"auditorium_id", id,
		"pattern", string(result.Pattern),
		"seat_count", result.SeatCount,
		"rebuilt_showtimes", len(result.RebuiltShowtimes),
	)

	app.invalidateSeatMaps(r, result.RebuiltShowtimes)

	event := queue.LayoutRebuiltEvent{
		AuditoriumID:     id,
		Pattern:          string(result.Pattern),
		SeatCount:        result.SeatCount,
		RebuiltShowtimes: result.RebuiltShowtimes,
		RebuiltAt:        now.UTC().Format(time.RFC3339),
	}
	_ = app.events.Publish(r.Context(), queue.QueueLayoutRebuilt, event)

	resp := api.RebuildResponse{
		AuditoriumId:     id,
		Pattern:          string(result.Pattern),
		SeatCount:        result.SeatCount,
		RebuiltShowtimes: result.RebuiltShowtimes,
	}

	if resp.RebuiltShowtimes == nil {
		resp.RebuiltShowtimes = []string{}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteAuditorium(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "auditoriumId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.auditoriumRepo.Delete(r.Context(), id, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrUpcomingShowtimes):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAuditoriumResponse(a *domain.Auditorium) api.AuditoriumResponse {
	return api.AuditoriumResponse{
		Id:       a.ID,
		CinemaId: a.CinemaID,
		Name:     a.Name,
		Pattern:  string(a.Pattern),
		SeatRows: toSeatRows(a.Seats),
	}
}

// toSeatRows groups seats into rows for rendering. Seats arrive ordered
// by row then column, so a row change always starts a new group.
func toSeatRows(seats []domain.Seat) []api.SeatRow {
	var rows []api.SeatRow

	for _, s := range seats {
		seat := api.Seat{
			Id:     s.ID,
			Label:  s.Label,
			Row:    s.Row,
			Column: s.Col,
			Type:   string(s.Type),
			Active: s.Active,
		}

		if len(rows) == 0 || rows[len(rows)-1].Row != s.Row {
			rows = append(rows, api.SeatRow{Row: s.Row})
		}

		last := &rows[len(rows)-1]
		last.Seats = append(last.Seats, seat)
	}

	return rows
}
