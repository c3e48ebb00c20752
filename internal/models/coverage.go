package models

import "time"

// ----- COVERAGE -----

// ImportCoverage summarises how much of the imported catalog is hydrated with detail data.
type ImportCoverage struct {
	TotalMovies     int64 `json:"totalMovies"`
	WithEpisodes    int64 `json:"withEpisodes"`
	WithoutEpisodes int64 `json:"withoutEpisodes"`
	Genres          int64 `json:"genres"`
	Countries       int64 `json:"countries"`
}

// ----- PENDING -----

// PendingMovie is a movie imported from a listing that never got its detail view.
type PendingMovie struct {
	Slug       string    `json:"slug" bson:"slug"`
	Name       string    `json:"name" bson:"name"`
	ImportedAt time.Time `json:"importedAt" bson:"importedAt"`
}

// PendingDetails is the response of /api/stats/pending.
type PendingDetails struct {
	Limit  int64          `json:"limit"`
	Movies []PendingMovie `json:"movies"`
}

// ----- CATALOG -----

// Page is one page of a catalog listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}
