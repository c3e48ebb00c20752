package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-service/internal/models"
	"movie-service/internal/ophim"
)

func TestImportGenres(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/the-loai", jsonBody(listPayload(
		map[string]any{"_id": "g1", "name": "Hành Động", "slug": "hanh-dong"},
		map[string]any{"_id": "g2", "name": "Hài Hước", "slug": "hai-huoc"},
	)))

	res, err := env.importer.ImportGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Imported: 2}, res)
	require.Len(t, env.genres.docs, 2)

	g := env.genres.docs["hanh-dong"]
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, "Hành Động", g.Name)
	assert.Equal(t, models.SourceOPhim, g.Source)

	// second run updates in place
	res, err = env.importer.ImportGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Imported: 2}, res)
	assert.Len(t, env.genres.docs, 2)
}

func TestImportCountries(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/quoc-gia", jsonBody(listPayload(
		map[string]any{"_id": "c1", "name": "Hàn Quốc", "slug": "han-quoc"},
	)))

	res, err := env.importer.ImportCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Imported: 1}, res)
	assert.Contains(t, env.countries.docs, "han-quoc")
	assert.Empty(t, env.genres.docs)
}

func TestImportGenres_BadPayloadCountsOneError(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/the-loai", jsonBody(map[string]any{"status": "error", "msg": "nope"}))

	res, err := env.importer.ImportGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Errors: 1}, res)
	assert.Empty(t, env.genres.docs)
}

func TestImportGenres_TransportErrorIsReturned(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/the-loai", statusCode(http.StatusInternalServerError))

	_, err := env.importer.ImportGenres(context.Background())
	require.Error(t, err)

	var se *ophim.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestImportMovieBySlug(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/phim/tenet", jsonBody(detailPayload(detailMovie("tenet", "Vietsub #1", "Thuyết Minh #1"))))

	movie, err := env.importer.ImportMovieBySlug(context.Background(), "tenet")
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.Len(t, movie.Episodes, 2)
	assert.Equal(t, "Vietsub #1", movie.Episodes[0].ServerName)
	assert.Equal(t, "https://m3u8.test/tenet.m3u8", movie.Episodes[0].ServerData[0].LinkM3U8)

	stored := requireStoredMovie(t, env, "tenet")
	assert.Equal(t, "plot of tenet", stored.Content)
	assert.Len(t, stored.Episodes, 2)
	assert.Equal(t, "https://cdn.test/uploads/movies/tenet-thumb.jpg", *stored.ThumbURL)
}

func TestImportMovieBySlug_NotFound(t *testing.T) {
	env := newTestEnv(t)

	movie, err := env.importer.ImportMovieBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, movie)
	assert.Empty(t, env.movies.docs)
}

func TestImportMovies_ListOnly(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"), listMovie("b"))))
	env.api.handle(latestPage(2), jsonBody(listPayload(listMovie("c"))))

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 2})
	assert.Equal(t, models.ImportResult{Imported: 3}, res)
	assert.Len(t, env.movies.docs, 3)

	// no detail requests without WithDetails
	assert.Equal(t, []string{latestPage(1), latestPage(2)}, env.api.calls())
	// one pause between the two pages
	assert.Equal(t, []time.Duration{testPageDelay}, env.delays.waits)
}

func TestImportMovies_FailedPageIsCountedAndSkipped(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"), listMovie("b"))))
	env.api.handle(latestPage(2), statusCode(http.StatusInternalServerError))
	env.api.handle(latestPage(3), jsonBody(listPayload(listMovie("c"))))

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 3})
	assert.Equal(t, models.ImportResult{Imported: 3, Errors: 1}, res)
	assert.Contains(t, env.api.calls(), latestPage(3))
	assert.Len(t, env.delays.waits, 2)
}

func TestImportMovies_WithDetails(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"), listMovie("b"), listMovie("c"))))
	env.api.handle("/phim/a", jsonBody(detailPayload(detailMovie("a", "S1"))))
	env.api.handle("/phim/c", jsonBody(detailPayload(detailMovie("c", "S1", "S2"))))
	// "/phim/b" is not routed and answers 404

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1, WithDetails: true})
	assert.Equal(t, models.ImportResult{Imported: 3, Errors: 1}, res)

	assert.Equal(t, []string{latestPage(1), "/phim/a", "/phim/b", "/phim/c"}, env.api.calls())
	assert.Equal(t, []time.Duration{testRequestDelay, testRequestDelay}, env.delays.waits)

	assert.Len(t, requireStoredMovie(t, env, "a").Episodes, 1)
	assert.False(t, requireStoredMovie(t, env, "b").HasEpisodes())
	assert.Len(t, requireStoredMovie(t, env, "c").Episodes, 2)
}

func TestImportMovies_DetailProgressAtInfo(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"), listMovie("b"))))
	env.api.handle("/phim/a", jsonBody(detailPayload(detailMovie("a", "S1"))))
	env.api.handle("/phim/b", jsonBody(detailPayload(detailMovie("b", "S1"))))

	env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1, WithDetails: true})

	progress := env.logLines(t, "detail progress")
	require.Len(t, progress, 2)
	for i, rec := range progress {
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, float64(i+1), rec["n"])
		assert.Equal(t, float64(2), rec["of"])
	}
	assert.Equal(t, "b", progress[1]["slug"])
}

func TestImportMovies_ListViewNeverOverwritesDetail(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/phim/tenet", jsonBody(detailPayload(detailMovie("tenet", "S1"))))

	_, err := env.importer.ImportMovieBySlug(context.Background(), "tenet")
	require.NoError(t, err)
	writes := env.movies.writes

	renamed := listMovie("tenet")
	renamed["name"] = "Renamed In Listing"
	env.api.handle(latestPage(1), jsonBody(listPayload(renamed, listMovie("other"))))

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1})
	assert.Equal(t, models.ImportResult{Imported: 1}, res)
	assert.Equal(t, writes+1, env.movies.writes)

	stored := requireStoredMovie(t, env, "tenet")
	assert.Equal(t, "Movie tenet", stored.Name)
	assert.Equal(t, "plot of tenet", stored.Content)
	assert.Len(t, stored.Episodes, 1)
}

func TestImportMovies_ListViewKeepsDetailFieldsOfEpisodelessRecord(t *testing.T) {
	env := newTestEnv(t)
	// a detail record without any episodes is not protected, but a list-view
	// write only sets list fields
	env.api.handle("/phim/trailer", jsonBody(detailPayload(detailMovie("trailer"))))
	_, err := env.importer.ImportMovieBySlug(context.Background(), "trailer")
	require.NoError(t, err)

	renamed := listMovie("trailer")
	renamed["name"] = "New Name"
	env.api.handle(latestPage(1), jsonBody(listPayload(renamed)))

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1})
	assert.Equal(t, models.ImportResult{Imported: 1}, res)

	stored := requireStoredMovie(t, env, "trailer")
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "plot of trailer", stored.Content)
}

func TestImportMovies_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"), listMovie("b"))))

	first := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1})
	before := requireStoredMovie(t, env, "a")

	second := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1})
	after := requireStoredMovie(t, env, "a")

	assert.Equal(t, first, second)
	assert.Len(t, env.movies.docs, 2)
	assert.Equal(t, before, after)
}

func TestImportMovies_StoreFailureCountsPage(t *testing.T) {
	env := newTestEnv(t)
	env.movies.err = errors.New("connection reset")
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"))))
	env.api.handle("/phim/a", jsonBody(detailPayload(detailMovie("a", "S1"))))

	res := env.importer.ImportMovies(context.Background(), ImportOptions{Pages: 1, WithDetails: true})
	assert.Equal(t, models.ImportResult{Errors: 1}, res)
	// slugs of a failed page are not hydrated
	assert.Equal(t, []string{latestPage(1)}, env.api.calls())
}

func TestImportMoviesByGenre(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle("/the-loai/hanh-dong?page=1", jsonBody(listPayload(listMovie("a"))))
	env.api.handle("/the-loai/hanh-dong?page=2", jsonBody(listPayload()))

	res := env.importer.ImportMoviesByGenre(context.Background(), "hanh-dong", ImportOptions{Pages: 2})
	assert.Equal(t, models.ImportResult{Imported: 1}, res)
	assert.Equal(t, []string{"/the-loai/hanh-dong?page=1", "/the-loai/hanh-dong?page=2"}, env.api.calls())
}

func TestImportMovies_StopsWhenCancelled(t *testing.T) {
	env := newTestEnv(t)
	env.api.handle(latestPage(1), jsonBody(listPayload(listMovie("a"))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := env.importer.ImportMovies(ctx, ImportOptions{Pages: 3})
	assert.Equal(t, models.ImportResult{}, res)
	assert.Empty(t, env.api.calls())
}
