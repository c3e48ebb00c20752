package ophim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const statusSuccess = "success"

// ErrBadPayload is returned when the response envelope is not a success or
// lacks the expected data.items / data.item payload.
var ErrBadPayload = errors.New("ophim: unexpected payload")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// Client talks to the OPhim v1 API. It never issues requests concurrently
// on its own; callers drive it one request at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FetchJSON GETs url and decodes the JSON body into dest.
func (c *Client) FetchJSON(ctx context.Context, endpoint string, dest any) error {
	c.log.Info("fetching", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// ---------- endpoints ----------

func (c *Client) GenresURL() string    { return c.baseURL + "/the-loai" }
func (c *Client) CountriesURL() string { return c.baseURL + "/quoc-gia" }

func (c *Client) LatestMoviesURL(page int) string {
	return c.baseURL + "/danh-sach/phim-moi-cap-nhat?page=" + strconv.Itoa(page)
}

func (c *Client) GenreMoviesURL(genreSlug string, page int) string {
	return c.baseURL + "/the-loai/" + url.PathEscape(genreSlug) + "?page=" + strconv.Itoa(page)
}

func (c *Client) MovieDetailURL(slug string) string {
	return c.baseURL + "/phim/" + url.PathEscape(slug)
}

func (c *Client) Genres(ctx context.Context) ([]Taxonomy, error) {
	return fetchItems[Taxonomy](ctx, c, c.GenresURL())
}

func (c *Client) Countries(ctx context.Context) ([]Taxonomy, error) {
	return fetchItems[Taxonomy](ctx, c, c.CountriesURL())
}

func (c *Client) LatestMovies(ctx context.Context, page int) ([]Movie, error) {
	return fetchItems[Movie](ctx, c, c.LatestMoviesURL(page))
}

func (c *Client) GenreMovies(ctx context.Context, genreSlug string, page int) ([]Movie, error) {
	return fetchItems[Movie](ctx, c, c.GenreMoviesURL(genreSlug, page))
}

func (c *Client) MovieDetail(ctx context.Context, slug string) (*Movie, error) {
	var env Envelope[Movie]
	if err := c.FetchJSON(ctx, c.MovieDetailURL(slug), &env); err != nil {
		return nil, err
	}
	if env.Status != statusSuccess || env.Data == nil || env.Data.Item == nil {
		return nil, fmt.Errorf("movie %s: %w", slug, ErrBadPayload)
	}
	return env.Data.Item, nil
}

func fetchItems[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var env Envelope[T]
	if err := c.FetchJSON(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	if env.Status != statusSuccess || env.Data == nil || env.Data.Items == nil {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrBadPayload)
	}
	return env.Data.Items, nil
}
