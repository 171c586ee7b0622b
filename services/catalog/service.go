package catalog

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/pool"

	"kidshelf/models"
	"kidshelf/services/kids"
	"kidshelf/services/metadata"
)

const (
	itemsPerPage = 20
	// Search results fanning out to detail fetches are capped at one page.
	searchDetailLimit = 20
	// Bound on concurrent per-item upstream lookups within one request.
	maxConcurrentLookups = 5
)

// Request is one inbound catalog listing request.
type Request struct {
	CatalogID string
	Skip      int
	Genre     string
	Search    string
}

// Service turns opaque catalog ids plus pagination and filter parameters
// into listing previews backed by the metadata client.
type Service struct {
	tmdb *metadata.Client
}

func NewService(tmdb *metadata.Client) *Service {
	return &Service{tmdb: tmdb}
}

// Listings resolves a catalog request into an ordered, possibly empty, list
// of previews. Unrecognized catalog ids yield an empty listing; a failed
// top-level upstream call propagates to the caller.
func (s *Service) Listings(ctx context.Context, req Request) ([]models.MetaPreview, error) {
	id, ok := ParseCatalogID(req.CatalogID)
	if !ok {
		return []models.MetaPreview{}, nil
	}

	page := pageForSkip(req.Skip)

	if req.Search != "" {
		return s.search(ctx, id, req.Search, page)
	}
	return s.discover(ctx, id, req.Genre, page)
}

// pageForSkip converts the zero-based item-skip cursor into a one-based
// upstream page. Granularity is one full page: many skip values map to the
// same page and intra-page offsets are not supported.
func pageForSkip(skip int) int {
	return skip/itemsPerPage + 1
}

// discover lists the upstream discover endpoint, filtered server-side by
// certification and genre, then resolves each item's IMDB id concurrently.
// Items with no resolvable IMDB id are dropped; upstream popularity order
// is preserved for the rest.
func (s *Service) discover(ctx context.Context, id CatalogID, genre string, page int) ([]models.MetaPreview, error) {
	opts := metadata.DiscoverOptions{
		Page:           page,
		Certifications: kids.AllowedCertifications(id.AgeTier, id.MediaType),
		WithoutGenres:  kids.ExcludedGenreFilter(id.AgeTier),
	}
	if genre != "" {
		if gid, ok := genreID(id.MediaType, genre); ok {
			opts.WithGenres = gid
		}
	}
	if opts.WithGenres == "" && id.MediaType == "movie" {
		opts.WithGenres = kids.DefaultGenreFilter(id.AgeTier)
	}

	var (
		listing *metadata.PagedResults
		err     error
	)
	if id.MediaType == "movie" {
		listing, err = s.tmdb.DiscoverMovies(ctx, opts)
	} else {
		listing, err = s.tmdb.DiscoverSeries(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	results := listing.Results
	previews := make([]*models.MetaPreview, len(results))
	p := pool.New().WithMaxGoroutines(maxConcurrentLookups)
	for i := range results {
		p.Go(func() {
			item := results[i]
			ids, err := s.tmdb.ExternalIDs(ctx, id.MediaType, item.ID)
			if err != nil {
				log.Printf("[catalog] external id lookup failed for %s/%d: %v", id.MediaType, item.ID, err)
				return
			}
			if ids.IMDBID == "" {
				return
			}
			previews[i] = toPreview(item, id.MediaType, ids.IMDBID)
		})
	}
	p.Wait()

	return collect(previews), nil
}

// search runs the unfiltered upstream search for the page, fetches full
// details for the first results concurrently, and keeps only items whose
// certification passes the tier's allow-list and that carry an IMDB id.
// Per-item failures drop the item, never the request.
func (s *Service) search(ctx context.Context, id CatalogID, query string, page int) ([]models.MetaPreview, error) {
	var (
		listing *metadata.PagedResults
		err     error
	)
	if id.MediaType == "movie" {
		listing, err = s.tmdb.SearchMovies(ctx, query, page)
	} else {
		listing, err = s.tmdb.SearchSeries(ctx, query, page)
	}
	if err != nil {
		return nil, err
	}

	results := listing.Results
	if len(results) > searchDetailLimit {
		results = results[:searchDetailLimit]
	}

	previews := make([]*models.MetaPreview, len(results))
	p := pool.New().WithMaxGoroutines(maxConcurrentLookups)
	for i := range results {
		p.Go(func() {
			item := results[i]
			imdbID, allowed := s.checkSearchItem(ctx, id, item.ID)
			if !allowed || imdbID == "" {
				return
			}
			previews[i] = toPreview(item, id.MediaType, imdbID)
		})
	}
	p.Wait()

	return collect(previews), nil
}

// checkSearchItem fetches an item's details and evaluates its certification
// against the tier. Fetch failures report not-allowed.
func (s *Service) checkSearchItem(ctx context.Context, id CatalogID, tmdbID int64) (imdbID string, allowed bool) {
	if id.MediaType == "movie" {
		details, err := s.tmdb.MovieDetails(ctx, tmdbID)
		if err != nil {
			log.Printf("[catalog] detail fetch failed for movie/%d: %v", tmdbID, err)
			return "", false
		}
		return details.ExternalIDs.IMDBID, kids.MovieAllowed(details.ReleaseDates, id.AgeTier)
	}
	details, err := s.tmdb.SeriesDetails(ctx, tmdbID)
	if err != nil {
		log.Printf("[catalog] detail fetch failed for tv/%d: %v", tmdbID, err)
		return "", false
	}
	return details.ExternalIDs.IMDBID, kids.SeriesAllowed(details.ContentRatings, id.AgeTier)
}

func toPreview(item metadata.Result, mediaType, imdbID string) *models.MetaPreview {
	return &models.MetaPreview{
		ID:          imdbID,
		Type:        mediaType,
		Name:        item.DisplayTitle(),
		Poster:      metadata.PosterURL(item.PosterPath),
		Description: item.Overview,
		ReleaseInfo: metadata.Year(item.AirDate()),
		IMDBRating:  metadata.FormatRating(item.VoteAverage),
	}
}

// collect filters dropped items out of an indexed fan-out result, keeping
// the original ordering of the survivors.
func collect(previews []*models.MetaPreview) []models.MetaPreview {
	metas := make([]models.MetaPreview, 0, len(previews))
	for _, p := range previews {
		if p != nil {
			metas = append(metas, *p)
		}
	}
	return metas
}
