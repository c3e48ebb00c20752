package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"movie-service/internal/logger"
	"movie-service/internal/mapper"
	"movie-service/internal/models"
	"movie-service/internal/ophim"
)

// ---------- fake OPhim ----------

type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	f.mu.Lock()
	f.hits = append(f.hits, key)
	h, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (f *fakeAPI) handle(key string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = h
}

func (f *fakeAPI) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hits...)
}

func jsonBody(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func statusCode(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

func listPayload(items ...map[string]any) map[string]any {
	if items == nil {
		items = []map[string]any{}
	}
	return map[string]any{"status": "success", "data": map[string]any{"items": items}}
}

func detailPayload(item map[string]any) map[string]any {
	return map[string]any{"status": "success", "data": map[string]any{"item": item}}
}

func listMovie(slug string) map[string]any {
	return map[string]any{
		"_id":       "id-" + slug,
		"name":      "Movie " + slug,
		"slug":      slug,
		"type":      "single",
		"thumb_url": slug + "-thumb.jpg",
		"year":      2024,
	}
}

func detailMovie(slug string, servers ...string) map[string]any {
	m := listMovie(slug)
	m["content"] = "plot of " + slug
	m["actor"] = []string{"A"}
	eps := []map[string]any{}
	for _, name := range servers {
		eps = append(eps, map[string]any{
			"server_name": name,
			"server_data": []map[string]any{{
				"name":       "Full",
				"slug":       "full",
				"filename":   slug + ".mp4",
				"link_embed": "https://embed.test/" + slug,
				"link_m3u8":  "https://m3u8.test/" + slug + ".m3u8",
			}},
		})
	}
	m["episodes"] = eps
	return m
}

// ---------- in-memory stores with $set semantics ----------

func setFields(doc any) bson.M {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		panic(err)
	}
	return fields
}

type memMovies struct {
	docs   map[string]bson.M
	writes int
	err    error
}

func newMemMovies() *memMovies { return &memMovies{docs: map[string]bson.M{}} }

func (m *memMovies) set(slug string, doc any) error {
	if m.err != nil {
		return m.err
	}
	cur, ok := m.docs[slug]
	if !ok {
		cur = bson.M{}
		m.docs[slug] = cur
	}
	for k, v := range setFields(doc) {
		cur[k] = v
	}
	m.writes++
	return nil
}

func (m *memMovies) FindBySlug(_ context.Context, slug string) (*models.MovieDetail, error) {
	doc, ok := m.docs[slug]
	if !ok {
		return nil, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out models.MovieDetail
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *memMovies) Upsert(_ context.Context, movie *models.Movie) error {
	return m.set(movie.Slug, movie)
}

func (m *memMovies) UpsertDetail(_ context.Context, movie *models.MovieDetail) error {
	return m.set(movie.Slug, movie)
}

type memTaxonomy struct {
	docs   map[string]models.Taxonomy
	writes int
}

func newMemTaxonomy() *memTaxonomy { return &memTaxonomy{docs: map[string]models.Taxonomy{}} }

func (m *memTaxonomy) Upsert(_ context.Context, t *models.Taxonomy) error {
	m.docs[t.Slug] = *t
	m.writes++
	return nil
}

// ---------- importer wiring ----------

type delayRecorder struct {
	waits []time.Duration
}

func (d *delayRecorder) delay(ctx context.Context, dur time.Duration) error {
	d.waits = append(d.waits, dur)
	return ctx.Err()
}

type testEnv struct {
	api       *fakeAPI
	movies    *memMovies
	genres    *memTaxonomy
	countries *memTaxonomy
	delays    *delayRecorder
	logs      *bytes.Buffer
	importer  *Importer
}

const (
	testPageDelay    = time.Second
	testRequestDelay = 500 * time.Millisecond
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api, srv := newFakeAPI(t)

	env := &testEnv{
		api:       api,
		movies:    newMemMovies(),
		genres:    newMemTaxonomy(),
		countries: newMemTaxonomy(),
		delays:    &delayRecorder{},
		logs:      &bytes.Buffer{},
	}

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := ophim.NewClient(srv.URL, 5*time.Second, logger.Discard())
	env.importer = NewImporter(client, env.genres, env.countries, env.movies,
		mapper.New("https://cdn.test", func() time.Time { return fixed }),
		ImporterConfig{
			PageDelay:    testPageDelay,
			RequestDelay: testRequestDelay,
			Delay:        env.delays.delay,
			Logger:       logger.New(env.logs, "production", false),
		})
	return env
}

// logLines returns the decoded JSON log records whose msg equals msg.
func (e *testEnv) logLines(t *testing.T, msg string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(e.logs.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

func latestPage(n int) string { return fmt.Sprintf("/danh-sach/phim-moi-cap-nhat?page=%d", n) }

func requireStoredMovie(t *testing.T, env *testEnv, slug string) *models.MovieDetail {
	t.Helper()
	m, err := env.movies.FindBySlug(context.Background(), slug)
	require.NoError(t, err)
	require.NotNil(t, m, "movie %s not stored", slug)
	return m
}
