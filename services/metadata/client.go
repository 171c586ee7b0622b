package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	tmdbBaseURL   = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p"

	// CertificationCountry is the region whose certification boards drive
	// both upstream discover filters and local certification checks.
	CertificationCountry = "US"
)

// Cache TTL classes by call purpose. Listings churn with upstream
// popularity, details are stable for a day, and id mappings essentially
// never change.
const (
	ttlCatalog     = 4 * time.Hour
	ttlDetails     = 24 * time.Hour
	ttlExternalIDs = 7 * 24 * time.Hour
	ttlSearch      = 1 * time.Hour
	ttlFind        = 7 * 24 * time.Hour
	ttlSeason      = 24 * time.Hour
)

// Vote-count floors suppress low-signal items from discover listings.
const (
	movieVoteFloor  = 50
	seriesVoteFloor = 20
)

// Client is the single choke point for TMDB calls. Every request is keyed
// by its fully resolved URL and memoized in a bounded TTL cache; only
// successful responses are stored.
type Client struct {
	token    string
	language string
	httpc    *http.Client
	cache    *memCache
}

// NewClient builds a TMDB client. httpc and clk may be nil for production
// defaults; tests inject a fake transport and a mock clock.
func NewClient(token, language string, httpc *http.Client, clk clock.Clock) *Client {
	if httpc == nil {
		httpc = &http.Client{}
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{
		token:    token,
		language: language,
		httpc:    httpc,
		cache:    newMemCache(clk),
	}
}

// requestURL resolves path and params into the canonical request URL.
// url.Values encoding sorts keys, so logically identical requests always
// produce identical strings no matter the order parameters were added.
// The resolved string doubles as the cache key.
func requestURL(path string, params url.Values) string {
	u := tmdbBaseURL + "/" + path
	if enc := params.Encode(); enc != "" {
		u = u + "?" + enc
	}
	return u
}

// fetchJSON performs a cache-checked GET. On a hit the cached payload is
// decoded with no network call. On a miss the response body is decoded and
// stored under ttl; non-2xx responses surface as *UpstreamError and are
// never cached.
func (c *Client) fetchJSON(ctx context.Context, path string, params url.Values, ttl time.Duration, v any) error {
	u := requestURL(path, params)
	if raw, ok := c.cache.get(u); ok {
		return json.Unmarshal(raw, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("tmdb response %s: %w", path, err)
	}
	c.cache.set(u, raw, ttl)
	return nil
}

// DiscoverOptions narrows a discover listing. Certifications come from the
// age-tier allow-list; genre expressions use TMDB's pipe-OR syntax.
type DiscoverOptions struct {
	Page           int
	Certifications []string
	WithGenres     string
	WithoutGenres  string
}

func (c *Client) discover(ctx context.Context, path string, opts DiscoverOptions, voteFloor int) (*PagedResults, error) {
	params := url.Values{}
	params.Set("certification_country", CertificationCountry)
	params.Set("certification", strings.Join(opts.Certifications, "|"))
	params.Set("include_adult", "false")
	params.Set("sort_by", "popularity.desc")
	params.Set("vote_count.gte", strconv.Itoa(voteFloor))
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("language", c.language)
	if opts.WithGenres != "" {
		params.Set("with_genres", opts.WithGenres)
	}
	if opts.WithoutGenres != "" {
		params.Set("without_genres", opts.WithoutGenres)
	}
	var page PagedResults
	if err := c.fetchJSON(ctx, path, params, ttlCatalog, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DiscoverMovies lists popular movies filtered server-side by certification
// and genre.
func (c *Client) DiscoverMovies(ctx context.Context, opts DiscoverOptions) (*PagedResults, error) {
	return c.discover(ctx, "discover/movie", opts, movieVoteFloor)
}

// DiscoverSeries lists popular series filtered server-side by certification
// and genre.
func (c *Client) DiscoverSeries(ctx context.Context, opts DiscoverOptions) (*PagedResults, error) {
	return c.discover(ctx, "discover/tv", opts, seriesVoteFloor)
}

func (c *Client) search(ctx context.Context, path, query string, page int) (*PagedResults, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	params.Set("language", c.language)
	var res PagedResults
	if err := c.fetchJSON(ctx, path, params, ttlSearch, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchMovies runs an unfiltered free-text movie search.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*PagedResults, error) {
	return c.search(ctx, "search/movie", query, page)
}

// SearchSeries runs an unfiltered free-text series search.
func (c *Client) SearchSeries(ctx context.Context, query string, page int) (*PagedResults, error) {
	return c.search(ctx, "search/tv", query, page)
}

// MovieDetails fetches a movie with credits, external ids and release dates
// appended in one call.
func (c *Client) MovieDetails(ctx context.Context, tmdbID int64) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,external_ids,release_dates")
	params.Set("language", c.language)
	var d MovieDetails
	if err := c.fetchJSON(ctx, fmt.Sprintf("movie/%d", tmdbID), params, ttlDetails, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SeriesDetails fetches a series with credits, external ids and content
// ratings appended in one call.
func (c *Client) SeriesDetails(ctx context.Context, tmdbID int64) (*SeriesDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,external_ids,content_ratings")
	params.Set("language", c.language)
	var d SeriesDetails
	if err := c.fetchJSON(ctx, fmt.Sprintf("tv/%d", tmdbID), params, ttlDetails, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ExternalIDs fetches the external identifiers for a TMDB item.
// mediaType is "movie" or "series".
func (c *Client) ExternalIDs(ctx context.Context, mediaType string, tmdbID int64) (*ExternalIDs, error) {
	prefix := "movie"
	if mediaType == "series" || mediaType == "tv" {
		prefix = "tv"
	}
	var ids ExternalIDs
	if err := c.fetchJSON(ctx, fmt.Sprintf("%s/%d/external_ids", prefix, tmdbID), url.Values{}, ttlExternalIDs, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}

// FindByIMDBID translates an IMDB id into TMDB items.
func (c *Client) FindByIMDBID(ctx context.Context, imdbID string) (*FindResults, error) {
	params := url.Values{}
	params.Set("external_source", "imdb_id")
	var found FindResults
	if err := c.fetchJSON(ctx, "find/"+imdbID, params, ttlFind, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// SeasonDetails fetches one season's episode list.
func (c *Client) SeasonDetails(ctx context.Context, tmdbID int64, season int) (*Season, error) {
	params := url.Values{}
	params.Set("language", c.language)
	var s Season
	if err := c.fetchJSON(ctx, fmt.Sprintf("tv/%d/season/%d", tmdbID, season), params, ttlSeason, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
