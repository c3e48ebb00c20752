package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"movie-service/internal/models"
)

const (
	DefaultMoviePages = 3
	DefaultGenrePages = 2
)

// ErrNothingToRun is returned when no import was selected; the CLI prints usage.
var ErrNothingToRun = errors.New("no import selected")

// RunOptions mirrors the importer command line. Pages <= 0 means "use the default".
type RunOptions struct {
	All       bool
	Genres    bool
	Countries bool
	Movies    bool
	Pages     int
	Slug      string
	Genre     string
	NoDetails bool
}

// Empty reports whether no import was selected at all.
func (o RunOptions) Empty() bool {
	return o.Slug == "" && o.Genre == "" && !o.doGenres() && !o.doCountries() && !o.doMovies()
}

func (o RunOptions) doGenres() bool    { return o.All || o.Genres }
func (o RunOptions) doCountries() bool { return o.All || o.Countries }
func (o RunOptions) doMovies() bool    { return o.All || o.Movies }

func (o RunOptions) pages(def int) int {
	if o.Pages > 0 {
		return o.Pages
	}
	return def
}

// Runner selects and sequences the importers for one run.
type Runner struct {
	importer  *Importer
	delay     Delay
	stepDelay time.Duration
	log       *slog.Logger
}

func NewRunner(importer *Importer, delay Delay, stepDelay time.Duration, log *slog.Logger) *Runner {
	if delay == nil {
		delay = SleepDelay
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{importer: importer, delay: delay, stepDelay: stepDelay, log: log.With("component", "runner")}
}

// Run executes the selected imports. A slug short-circuits everything else,
// then a genre; otherwise genres, countries and movies run in that order.
// Only taxonomy transport or database failures are returned as errors; the
// summary collected so far is returned alongside them.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*models.RunSummary, error) {
	if opts.Empty() {
		return nil, ErrNothingToRun
	}

	summary := &models.RunSummary{}
	log := r.log.With("run", uuid.NewString())
	log.Info("import started",
		"all", opts.All, "genres", opts.Genres, "countries", opts.Countries, "movies", opts.Movies,
		"pages", opts.Pages, "slug", opts.Slug, "genre", opts.Genre, "withDetails", !opts.NoDetails)

	if opts.Slug != "" {
		res := models.ImportResult{Imported: 1}
		if _, err := r.importer.ImportMovieBySlug(ctx, opts.Slug); err != nil {
			res = models.ImportResult{Errors: 1}
		}
		summary.Movie = &res
		log.Info("import complete")
		return summary, nil
	}

	if opts.Genre != "" {
		res := r.importer.ImportMoviesByGenre(ctx, opts.Genre, ImportOptions{
			Pages:       opts.pages(DefaultGenrePages),
			WithDetails: !opts.NoDetails,
		})
		summary.Genre = &res
		log.Info("import complete")
		return summary, nil
	}

	if opts.doGenres() {
		res, err := r.importer.ImportGenres(ctx)
		summary.Genres = &res
		if err != nil {
			return summary, err
		}
		_ = r.delay(ctx, r.stepDelay)
	}

	if opts.doCountries() {
		res, err := r.importer.ImportCountries(ctx)
		summary.Countries = &res
		if err != nil {
			return summary, err
		}
		_ = r.delay(ctx, r.stepDelay)
	}

	if opts.doMovies() {
		res := r.importer.ImportMovies(ctx, ImportOptions{
			Pages:       opts.pages(DefaultMoviePages),
			WithDetails: !opts.NoDetails,
		})
		summary.Movies = &res
	}

	log.Info("import complete")
	return summary, nil
}
