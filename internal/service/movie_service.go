// internal/service/movie_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"movie-service/internal/cache"
	"movie-service/internal/models"
	"movie-service/internal/repository"
)

const (
	DefaultPageSize = 24
	MaxPageSize     = 50

	// loadTimeout bounds a shared cache-miss load, which outlives any single caller.
	loadTimeout = 10 * time.Second
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieReader interface {
	FindBySlug(ctx context.Context, slug string) (*models.MovieDetail, error)
	Search(ctx context.Context, f repository.MovieFilter, limit, offset int) ([]models.Movie, int64, error)
	Years(ctx context.Context) ([]int, error)
}

type TaxonomyReader interface {
	List(ctx context.Context) ([]models.Taxonomy, error)
}

// MovieQuery is one catalog listing request.
type MovieQuery struct {
	repository.MovieFilter
	Page int
	Size int
}

// Normalize clamps paging: page >= 1, size in 1..MaxPageSize.
func (q MovieQuery) Normalize() MovieQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Size <= 0:
		q.Size = DefaultPageSize
	case q.Size > MaxPageSize:
		q.Size = MaxPageSize
	}
	return q
}

func (q MovieQuery) cacheKey() string {
	return fmt.Sprintf("catalog:movies:type=%s:genre=%s:country=%s:year=%d:q=%s:page=%d:size=%d",
		q.Type, q.Genre, q.Country, q.Year, q.Keyword, q.Page, q.Size)
}

// MovieService serves the read side of the imported catalog.
type MovieService struct {
	movies    MovieReader
	genres    TaxonomyReader
	countries TaxonomyReader

	cache cache.Store
	ttl   time.Duration
	group singleflight.Group

	log *slog.Logger
}

func NewMovieService(
	movies MovieReader,
	genres, countries TaxonomyReader,
	store cache.Store,
	ttl time.Duration,
	log *slog.Logger,
) *MovieService {
	if log == nil {
		log = slog.Default()
	}
	return &MovieService{
		movies:    movies,
		genres:    genres,
		countries: countries,
		cache:     store,
		ttl:       ttl,
		log:       log.With("component", "catalog"),
	}
}

// ---------------------- LISTINGS ----------------------

// Search returns one page of movies matching q, most recently modified first.
func (s *MovieService) Search(ctx context.Context, q MovieQuery) (*models.Page[models.Movie], error) {
	q = q.Normalize()

	return cached(ctx, s, q.cacheKey(), func(ctx context.Context) (*models.Page[models.Movie], error) {
		items, total, err := s.movies.Search(ctx, q.MovieFilter, q.Size, (q.Page-1)*q.Size)
		if err != nil {
			return nil, err
		}
		return &models.Page[models.Movie]{
			Items:      items,
			Page:       q.Page,
			Size:       q.Size,
			TotalItems: total,
			TotalPages: int((total + int64(q.Size) - 1) / int64(q.Size)),
		}, nil
	})
}

func (s *MovieService) GetBySlug(ctx context.Context, slug string) (*models.MovieDetail, error) {
	return cached(ctx, s, "catalog:movie:"+slug, func(ctx context.Context) (*models.MovieDetail, error) {
		m, err := s.movies.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, ErrMovieNotFound
		}
		return m, nil
	})
}

// ---------------------- FILTER VALUES ----------------------

func (s *MovieService) Genres(ctx context.Context) ([]models.Taxonomy, error) {
	return cached(ctx, s, "catalog:genres", s.genres.List)
}

func (s *MovieService) Countries(ctx context.Context) ([]models.Taxonomy, error) {
	return cached(ctx, s, "catalog:countries", s.countries.List)
}

func (s *MovieService) Years(ctx context.Context) ([]int, error) {
	return cached(ctx, s, "catalog:years", s.movies.Years)
}

// cached reads key from the cache, loading and storing it on a miss.
// Concurrent misses on the same key share one load, run detached from the
// first caller's cancellation. Cache failures are logged and fall through
// to the database.
func cached[T any](ctx context.Context, s *MovieService, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if s.cache != nil {
		ok, err := s.cache.GetJSON(ctx, key, &out)
		if err != nil {
			s.log.Warn("cache read failed", "key", key, "error", err)
		} else if ok {
			return out, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		val, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.SetJSON(loadCtx, key, val, s.ttl); err != nil {
				s.log.Warn("cache write failed", "key", key, "error", err)
			}
		}
		return val, nil
	})
	if err != nil {
		return out, err
	}
	return v.(T), nil
}
