package service

import (
	"context"

	"movie-service/internal/models"
)

const (
	DefaultPendingLimit = 50
	MaxPendingLimit     = 500
)

type CoverageReader interface {
	CountAll(ctx context.Context) (total, withEpisodes int64, err error)
	FindWithoutEpisodes(ctx context.Context, limit int64) ([]models.PendingMovie, error)
}

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// CoverageService reports how far detail hydration has got.
type CoverageService struct {
	movies    CoverageReader
	genres    Counter
	countries Counter
}

func NewCoverageService(movies CoverageReader, genres, countries Counter) *CoverageService {
	return &CoverageService{movies: movies, genres: genres, countries: countries}
}

// ---------------------- SUMMARY / PENDING ----------------------

func (s *CoverageService) Coverage(ctx context.Context) (*models.ImportCoverage, error) {
	total, withEpisodes, err := s.movies.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := s.genres.Count(ctx)
	if err != nil {
		return nil, err
	}
	countries, err := s.countries.Count(ctx)
	if err != nil {
		return nil, err
	}

	without := total - withEpisodes
	if without < 0 {
		without = 0
	}

	return &models.ImportCoverage{
		TotalMovies:     total,
		WithEpisodes:    withEpisodes,
		WithoutEpisodes: without,
		Genres:          genres,
		Countries:       countries,
	}, nil
}

// Pending lists movies still lacking episodes. limit is clamped to 1..MaxPendingLimit.
func (s *CoverageService) Pending(ctx context.Context, limit int64) (*models.PendingDetails, error) {
	switch {
	case limit <= 0:
		limit = DefaultPendingLimit
	case limit > MaxPendingLimit:
		limit = MaxPendingLimit
	}

	movies, err := s.movies.FindWithoutEpisodes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &models.PendingDetails{Limit: limit, Movies: movies}, nil
}
