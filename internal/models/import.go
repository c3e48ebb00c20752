package models

// ImportResult is the outcome of one importer call. Imported counts only
// list-stage writes; detail hydration failures only add to Errors.
type ImportResult struct {
	Imported int `json:"imported"`
	Errors   int `json:"errors"`
}

// RunSummary aggregates the results of one importer run, keyed by step
// (genres, countries, movies, genre, movie). Steps that did not run are omitted.
type RunSummary struct {
	Genres    *ImportResult `json:"genres,omitempty"`
	Countries *ImportResult `json:"countries,omitempty"`
	Movies    *ImportResult `json:"movies,omitempty"`
	Genre     *ImportResult `json:"genre,omitempty"`
	Movie     *ImportResult `json:"movie,omitempty"`
}
