package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("cinema-service", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/cinemas", func(r chi.Router) {
		r.Get("/", app.ListCinemas)
		r.Get("/{cinemaId}", app.GetCinema)
		r.Get("/{cinemaId}/auditoriums", app.ListAuditoriumsByCinema)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Post("/", app.CreateCinema)
			r.Patch("/{cinemaId}", app.UpdateCinema)
			r.Delete("/{cinemaId}", app.DeleteCinema)
			r.Post("/{cinemaId}/images", app.UploadCinemaImage)
			r.Post("/{cinemaId}/auditoriums", app.CreateAuditorium)
		})
	})

	r.Route("/auditoriums", func(r chi.Router) {
		r.Get("/{auditoriumId}", app.GetAuditorium)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Put("/{auditoriumId}/pattern", app.UpdateAuditoriumPattern)
			r.Delete("/{auditoriumId}", app.DeleteAuditorium)
		})
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.With(app.requireAdmin).Post("/", app.CreateShowtime)

		r.Get("/{showtimeId}/seat-map", app.GetSeatMapByShowtime)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication)

			r.Post("/{showtimeId}/bookings", app.CreateBooking)
			r.Delete("/{showtimeId}/bookings/{bookingId}", app.ReleaseBooking)
		})
	})

	return r
}
