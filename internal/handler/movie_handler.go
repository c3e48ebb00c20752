// internal/handler/movie_handler.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"movie-service/internal/models"
	"movie-service/internal/repository"
	"movie-service/internal/service"

	"github.com/go-chi/chi/v5"
)

// Catalog is the read side the movie endpoints need.
type Catalog interface {
	Search(ctx context.Context, q service.MovieQuery) (*models.Page[models.Movie], error)
	GetBySlug(ctx context.Context, slug string) (*models.MovieDetail, error)
	Genres(ctx context.Context) ([]models.Taxonomy, error)
	Countries(ctx context.Context) ([]models.Taxonomy, error)
	Years(ctx context.Context) ([]int, error)
}

type MovieHandler struct {
	svc Catalog
}

func NewMovieHandler(s Catalog) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Search / list movies (paged)
// @Tags movies
// @Produce json
// @Param q query string false "search in name and originName"
// @Param type query string false "single | series | hoathinh | tvshows"
// @Param genre query string false "genre slug"
// @Param country query string false "country slug"
// @Param year query int false "release year"
// @Param page query int false "page (default 1)"
// @Param size query int false "page size (default 24, max 50)"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Failure 500 {object} APIResponse
// @Router /api/movies [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))

	h.list(w, r, repository.MovieFilter{
		Type:    q.Get("type"),
		Genre:   q.Get("genre"),
		Country: q.Get("country"),
		Year:    year,
		Keyword: q.Get("q"),
	})
}

// @Summary Latest updated movies
// @Tags movies
// @Produce json
// @Param page query int false "page (default 1)"
// @Param size query int false "page size (default 24, max 50)"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Router /api/movies/latest [get]
func (h *MovieHandler) Latest(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, repository.MovieFilter{})
}

// @Summary Movies by genre
// @Tags movies
// @Produce json
// @Param slug path string true "genre slug"
// @Param page query int false "page (default 1)"
// @Param size query int false "page size (default 24, max 50)"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Router /api/movies/genre/{slug} [get]
func (h *MovieHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, repository.MovieFilter{Genre: chi.URLParam(r, "slug")})
}

// @Summary Movies by country
// @Tags movies
// @Produce json
// @Param slug path string true "country slug"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Router /api/movies/country/{slug} [get]
func (h *MovieHandler) ByCountry(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, repository.MovieFilter{Country: chi.URLParam(r, "slug")})
}

// @Summary Movies by type
// @Tags movies
// @Produce json
// @Param type path string true "single | series | hoathinh | tvshows"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Router /api/movies/type/{type} [get]
func (h *MovieHandler) ByType(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, repository.MovieFilter{Type: chi.URLParam(r, "type")})
}

// @Summary Movies by year
// @Tags movies
// @Produce json
// @Param year path int true "release year"
// @Success 200 {object} APIResponse{data=models.Page[models.Movie]}
// @Failure 400 {object} APIResponse
// @Router /api/movies/year/{year} [get]
func (h *MovieHandler) ByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year <= 0 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	h.list(w, r, repository.MovieFilter{Year: year})
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request, f repository.MovieFilter) {
	page, err := h.svc.Search(r.Context(), service.MovieQuery{
		MovieFilter: f,
		Page:        queryInt(r, "page", 1),
		Size:        queryInt(r, "size", service.DefaultPageSize),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, page)
}

// @Summary Movie detail
// @Tags movies
// @Produce json
// @Param slug path string true "movie slug"
// @Success 200 {object} APIResponse{data=models.MovieDetail}
// @Failure 404 {object} APIResponse
// @Router /api/movies/slug/{slug} [get]
func (h *MovieHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	m, err := h.svc.GetBySlug(r.Context(), slug)
	if errors.Is(err, service.ErrMovieNotFound) {
		writeError(w, http.StatusNotFound, "movie not found: "+slug)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, m)
}

// ====== filter values ======

// @Summary Genres
// @Tags taxonomy
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Taxonomy}
// @Router /api/genres [get]
func (h *MovieHandler) Genres(w http.ResponseWriter, r *http.Request) {
	respond(w, func() (any, error) { return h.svc.Genres(r.Context()) })
}

// @Summary Countries
// @Tags taxonomy
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Taxonomy}
// @Router /api/countries [get]
func (h *MovieHandler) Countries(w http.ResponseWriter, r *http.Request) {
	respond(w, func() (any, error) { return h.svc.Countries(r.Context()) })
}

// @Summary Available years
// @Tags taxonomy
// @Produce json
// @Success 200 {object} APIResponse{data=[]int}
// @Router /api/years [get]
func (h *MovieHandler) Years(w http.ResponseWriter, r *http.Request) {
	respond(w, func() (any, error) { return h.svc.Years(r.Context()) })
}

func respond(w http.ResponseWriter, load func() (any, error)) {
	v, err := load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, v)
}
