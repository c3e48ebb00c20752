package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every public route of the catalog API.
func NewRouter(movieH *MovieHandler, statsH *StatsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/genres", movieH.Genres)
		r.Get("/countries", movieH.Countries)
		r.Get("/years", movieH.Years)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", movieH.Search)
			r.Get("/latest", movieH.Latest)
			r.Get("/genre/{slug}", movieH.ByGenre)
			r.Get("/country/{slug}", movieH.ByCountry)
			r.Get("/type/{type}", movieH.ByType)
			r.Get("/year/{year}", movieH.ByYear)
			r.Get("/slug/{slug}", movieH.GetBySlug)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/coverage", statsH.GetCoverage)
			r.Get("/pending", statsH.GetPending)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
