package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"movie-service/internal/mapper"
	"movie-service/internal/models"
	"movie-service/internal/ophim"
)

// Source is the external catalog the importer reads from.
type Source interface {
	Genres(ctx context.Context) ([]ophim.Taxonomy, error)
	Countries(ctx context.Context) ([]ophim.Taxonomy, error)
	LatestMovies(ctx context.Context, page int) ([]ophim.Movie, error)
	GenreMovies(ctx context.Context, genreSlug string, page int) ([]ophim.Movie, error)
	MovieDetail(ctx context.Context, slug string) (*ophim.Movie, error)
}

type TaxonomyStore interface {
	Upsert(ctx context.Context, t *models.Taxonomy) error
}

type MovieStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.MovieDetail, error)
	Upsert(ctx context.Context, m *models.Movie) error
	UpsertDetail(ctx context.Context, m *models.MovieDetail) error
}

// ImportOptions controls a paginated import.
type ImportOptions struct {
	Pages       int
	WithDetails bool
}

// Importer runs every request and every write strictly one after another so
// that at most one request to the external API is in flight.
type Importer struct {
	source    Source
	genres    TaxonomyStore
	countries TaxonomyStore
	movies    MovieStore
	mapper    *mapper.Mapper

	delay        Delay
	pageDelay    time.Duration
	requestDelay time.Duration

	log *slog.Logger
}

type ImporterConfig struct {
	PageDelay    time.Duration
	RequestDelay time.Duration
	Delay        Delay
	Logger       *slog.Logger
}

func NewImporter(
	source Source,
	genres, countries TaxonomyStore,
	movies MovieStore,
	m *mapper.Mapper,
	cfg ImporterConfig,
) *Importer {
	if cfg.Delay == nil {
		cfg.Delay = SleepDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Importer{
		source:       source,
		genres:       genres,
		countries:    countries,
		movies:       movies,
		mapper:       m,
		delay:        cfg.Delay,
		pageDelay:    cfg.PageDelay,
		requestDelay: cfg.RequestDelay,
		log:          cfg.Logger.With("component", "importer"),
	}
}

// ---------------------- GENRES / COUNTRIES ----------------------

// ImportGenres upserts every genre keyed by slug. A malformed payload counts
// as one error; transport and database errors are returned.
func (s *Importer) ImportGenres(ctx context.Context) (models.ImportResult, error) {
	s.log.Info("importing genres")
	return s.importTaxonomy(ctx, "genres", s.source.Genres, s.genres)
}

func (s *Importer) ImportCountries(ctx context.Context) (models.ImportResult, error) {
	s.log.Info("importing countries")
	return s.importTaxonomy(ctx, "countries", s.source.Countries, s.countries)
}

func (s *Importer) importTaxonomy(
	ctx context.Context,
	kind string,
	fetch func(context.Context) ([]ophim.Taxonomy, error),
	store TaxonomyStore,
) (models.ImportResult, error) {
	items, err := fetch(ctx)
	if errors.Is(err, ophim.ErrBadPayload) {
		s.log.Error("failed to fetch "+kind, "error", err)
		return models.ImportResult{Errors: 1}, nil
	}
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("fetch %s: %w", kind, err)
	}

	var res models.ImportResult
	for _, item := range items {
		t := s.mapper.Taxonomy(item)
		if err := store.Upsert(ctx, &t); err != nil {
			return res, err
		}
		res.Imported++
	}

	s.log.Info("imported "+kind, "count", res.Imported)
	return res, nil
}

// ---------------------- MOVIES ----------------------

// ImportMovies walks the "recently updated" listing.
func (s *Importer) ImportMovies(ctx context.Context, opts ImportOptions) models.ImportResult {
	s.log.Info("importing latest movies", "pages", opts.Pages, "withDetails", opts.WithDetails)
	return s.importPages(ctx, opts, s.source.LatestMovies)
}

// ImportMoviesByGenre walks the listing of one genre.
func (s *Importer) ImportMoviesByGenre(ctx context.Context, genreSlug string, opts ImportOptions) models.ImportResult {
	s.log.Info("importing movies by genre", "genre", genreSlug, "pages", opts.Pages, "withDetails", opts.WithDetails)
	return s.importPages(ctx, opts, func(ctx context.Context, page int) ([]ophim.Movie, error) {
		return s.source.GenreMovies(ctx, genreSlug, page)
	})
}

// importPages fetches pages 1..opts.Pages in order, upserting the list view
// of every item, then optionally hydrates each collected slug with its detail
// view. Page and item failures are counted and never abort the run.
func (s *Importer) importPages(
	ctx context.Context,
	opts ImportOptions,
	fetchPage func(ctx context.Context, page int) ([]ophim.Movie, error),
) models.ImportResult {
	var res models.ImportResult
	var pending []string

	for page := 1; page <= opts.Pages; page++ {
		if ctx.Err() != nil {
			break
		}
		log := s.log.With("page", page, "pages", opts.Pages)

		items, err := fetchPage(ctx, page)
		if err != nil {
			log.Error("failed to fetch page", "error", err)
			res.Errors++
		} else {
			log.Info("page fetched", "movies", len(items))

			imported, err := s.importMoviesFromList(ctx, items)
			res.Imported += imported
			if err != nil {
				log.Error("failed to import page", "error", err)
				res.Errors++
			} else if opts.WithDetails {
				for _, item := range items {
					pending = append(pending, item.Slug)
				}
			}
		}

		if page < opts.Pages {
			_ = s.delay(ctx, s.pageDelay)
		}
	}

	if opts.WithDetails && len(pending) > 0 {
		s.log.Info("importing details", "movies", len(pending))

		for i, slug := range pending {
			if ctx.Err() != nil {
				break
			}
			s.log.Info("detail progress", "slug", slug, "n", i+1, "of", len(pending))

			if _, err := s.ImportMovieBySlug(ctx, slug); err != nil {
				res.Errors++
			}
			if i < len(pending)-1 {
				_ = s.delay(ctx, s.requestDelay)
			}
		}
	}

	s.log.Info("movies imported", "imported", res.Imported, "errors", res.Errors)
	return res
}

// importMoviesFromList upserts the list view of each item unless the stored
// record already carries episodes. It returns how many records were written.
func (s *Importer) importMoviesFromList(ctx context.Context, items []ophim.Movie) (int, error) {
	imported := 0
	for _, item := range items {
		movie := s.mapper.Movie(item)

		existing, err := s.movies.FindBySlug(ctx, movie.Slug)
		if err != nil {
			return imported, fmt.Errorf("lookup %s: %w", movie.Slug, err)
		}
		if existing.HasEpisodes() {
			continue
		}

		if err := s.movies.Upsert(ctx, &movie); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ImportMovieBySlug fetches the detail view of one movie and upserts it
// unconditionally. Failures are logged and returned so callers can count
// them; they never abort a run.
func (s *Importer) ImportMovieBySlug(ctx context.Context, slug string) (*models.MovieDetail, error) {
	log := s.log.With("slug", slug)
	log.Info("importing movie")

	raw, err := s.source.MovieDetail(ctx, slug)
	if err != nil {
		log.Error("failed to fetch movie", "error", err)
		return nil, err
	}

	movie := s.mapper.MovieDetail(*raw)
	if err := s.movies.UpsertDetail(ctx, &movie); err != nil {
		log.Error("failed to store movie", "error", err)
		return nil, err
	}

	log.Info("movie imported", "name", movie.Name, "servers", len(movie.Episodes))
	return &movie, nil
}
