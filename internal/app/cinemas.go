package app

import (
	"errors"
	"net/http"

	"github.com/cinex/cinema-service/api"
	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
)

const maxImageSize = 5 << 20

func (app *Application) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCinemaRequest

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

	cinema := &domain.Cinema{
		Name:     req.Name,
		Address:  req.Address,
		District: req.District,
		City:     req.City,
		Phone:    req.Phone,
	}

	for _, a := range req.Auditoriums {
		pattern, err := layout.ParsePattern(a.Pattern)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		cinema.Auditoriums = append(cinema.Auditoriums, domain.Auditorium{
			Name:    a.Name,
			Pattern: pattern,
		})
	}

	err = app.cinemaRepo.Create(r.Context(), cinema)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCinemaResponse(cinema), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinema(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	cinema, err := app.cinemaRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCinemaResponse(cinema), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListCinemas(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	pagination := domain.Pagination{
		Page:     app.readIntQuery(r, "page", 1),
		PageSize: app.readIntQuery(r, "pageSize", 20),
	}

	if pagination.Page < 1 || pagination.PageSize < 1 || pagination.PageSize > 100 {
		app.badRequestResponse(w, r, errors.New("invalid pagination parameters"))
		return
	}

	cinemas, metadata, err := app.cinemaRepo.GetAll(r.Context(), city, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaListResponse{
		Cinemas: make([]api.CinemaResponse, 0, len(cinemas)),
	}

	for i := range cinemas {
		resp.Cinemas = append(resp.Cinemas, toCinemaResponse(&cinemas[i]))
	}

	if metadata != nil {
		resp.Metadata = &api.Metadata{
			CurrentPage:  metadata.CurrentPage,
			FirstPage:    metadata.FirstPage,
			LastPage:     metadata.LastPage,
			PageSize:     metadata.PageSize,
			TotalRecords: metadata.TotalRecords,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.UpdateCinemaRequest

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

	cinema, err := app.cinemaRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.District != nil {
		cinema.District = *req.District
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	if req.Phone != nil {
		cinema.Phone = *req.Phone
	}

	err = app.cinemaRepo.Update(r.Context(), cinema)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCinemaResponse(cinema), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.cinemaRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) UploadCinemaImage(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.cinemaRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = r.ParseMultipartForm(maxImageSize)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("missing image file"))
		return
	}
	defer file.Close()

	url, err := app.mediaStore.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.cinemaRepo.AppendImage(r.Context(), id, url)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.ImageUploadResponse{Url: url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListAuditoriumsByCinema(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	auditoriums, err := app.auditoriumRepo.GetAllByCinema(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := make([]api.AuditoriumSummary, 0, len(auditoriums))
	for _, a := range auditoriums {
		resp = append(resp, toAuditoriumSummary(a))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateAuditorium(w http.ResponseWriter, r *http.Request) {
	cinemaID, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.CreateAuditoriumRequest

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

	auditorium := &domain.Auditorium{
		CinemaID: cinemaID,
		Name:     req.Name,
		Pattern:  pattern,
	}

	err = app.auditoriumRepo.Create(r.Context(), auditorium)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toAuditoriumResponse(auditorium), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCinemaResponse(cinema *domain.Cinema) api.CinemaResponse {
	resp := api.CinemaResponse{
		Id:        cinema.ID,
		Name:      cinema.Name,
		Address:   cinema.Address,
		District:  cinema.District,
		City:      cinema.City,
		Phone:     cinema.Phone,
		Images:    cinema.Images,
		CreatedAt: cinema.CreatedAt,
	}

	if resp.Images == nil {
		resp.Images = []string{}
	}

	for _, a := range cinema.Auditoriums {
		resp.Auditoriums = append(resp.Auditoriums, toAuditoriumSummary(a))
	}

	return resp
}

func toAuditoriumSummary(a domain.Auditorium) api.AuditoriumSummary {
	return api.AuditoriumSummary{
		Id:      a.ID,
		Name:    a.Name,
		Pattern: string(a.Pattern),
	}
}
