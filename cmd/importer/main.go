// Command importer copies the OPhim catalog (genres, countries, movies)
// into MongoDB.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"movie-service/internal/config"
	"movie-service/internal/db"
	"movie-service/internal/logger"
	"movie-service/internal/mapper"
	"movie-service/internal/ophim"
	"movie-service/internal/repository"
	"movie-service/internal/service"
)

const usage = `OPhim import tool

Usage:
  importer --all                        Import genres, countries and movies
  importer --genres                     Import genres only
  importer --countries                  Import countries only
  importer --movies                     Import movies (3 pages by default)
  importer --movies --pages 5           Import 5 pages of movies
  importer --slug ten-phim              Import one movie by slug
  importer --genre hanh-dong            Import movies of one genre (2 pages by default)
  importer --genre hanh-dong --pages 3  Import 3 pages of one genre
  importer --movies --no-details        Import listings without fetching movie details

Environment:
  MONGODB_URI   MongoDB connection string (default mongodb://localhost:27017)
  APP_ENV       development | production (log format)
  DEBUG         true enables debug logs
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// pagesValue accepts anything; a value that is not a number means "use the default".
type pagesValue int

func (p *pagesValue) String() string { return strconv.Itoa(int(*p)) }

func (p *pagesValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 0
	}
	*p = pagesValue(n)
	return nil
}

func parseFlags(args []string, out io.Writer) (service.RunOptions, error) {
	var opts service.RunOptions
	var pages pagesValue

	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }

	fs.BoolVar(&opts.All, "all", false, "import genres, countries and movies")
	fs.BoolVar(&opts.Genres, "genres", false, "import genres")
	fs.BoolVar(&opts.Countries, "countries", false, "import countries")
	fs.BoolVar(&opts.Movies, "movies", false, "import latest movies")
	fs.Var(&pages, "pages", "number of listing pages")
	fs.StringVar(&opts.Slug, "slug", "", "import a single movie by slug")
	fs.StringVar(&opts.Genre, "genre", "", "import movies of a genre")
	fs.BoolVar(&opts.NoDetails, "no-details", false, "skip movie detail requests")

	err := fs.Parse(knownArgs(fs, args))
	opts.Pages = int(pages)
	return opts, err
}

// knownArgs drops arguments the flag set does not define, and value flags
// given without a value, so they behave as if absent.
func knownArgs(fs *flag.FlagSet, args []string) []string {
	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "h" || name == "help" {
			kept = append(kept, arg)
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); (ok && b.IsBoolFlag()) || hasValue {
			kept = append(kept, arg)
			continue
		}
		if i+1 < len(args) {
			kept = append(kept, arg, args[i+1])
			i++
		}
	}
	return kept
}

// run returns the process exit code. Every deferred cleanup has run by the
// time it returns.
func run(args []string, out io.Writer) int {
	opts, err := parseFlags(args, out)
	if err != nil {
		// the flag set has already printed usage
		return 0
	}
	if opts.Empty() {
		fmt.Fprint(out, usage)
		return 0
	}

	cfg := config.Load()
	logger.Init(cfg.Env, cfg.Debug)
	log := logger.With("component", "main")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("OPhim import tool",
		"mongo", cfg.RedactedMongoURI()+"/"+cfg.MongoDB,
		"api", cfg.OPhimBaseURL)

	client, database, err := db.Connect(ctx, cfg)
	defer db.Disconnect(client)
	if err != nil {
		log.Error("mongo unavailable", "error", err)
		return 1
	}

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Error("failed to create indexes", "error", err)
		return 1
	}

	importer := service.NewImporter(
		ophim.NewClient(cfg.OPhimBaseURL, cfg.HTTPTimeout, logger.With("component", "ophim")),
		repository.NewGenreRepository(database),
		repository.NewCountryRepository(database),
		repository.NewMovieRepository(database),
		mapper.New(cfg.CDNImageURL, nil),
		service.ImporterConfig{
			PageDelay:    cfg.PageDelay,
			RequestDelay: cfg.RequestDelay,
			Delay:        service.SleepDelay,
			Logger:       logger.Default(),
		},
	)
	runner := service.NewRunner(importer, service.SleepDelay, cfg.StepDelay, logger.Default())

	summary, err := runner.Run(ctx, opts)
	if errors.Is(err, service.ErrNothingToRun) {
		fmt.Fprint(out, usage)
		return 0
	}

	code := 0
	if err != nil {
		log.Error("import failed", "error", err)
		code = 1
	}
	if ctx.Err() != nil {
		log.Warn("import interrupted")
	}

	if summary != nil {
		b, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintf(out, "IMPORT COMPLETE\nResults: %s\n", b)
	}
	return code
}
