package meta

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sourcegraph/conc/pool"

	"kidshelf/models"
	"kidshelf/services/metadata"
)

const (
	castLimit            = 5
	maxConcurrentSeasons = 5
)

// Service assembles full detail records from an IMDB id: identifier
// translation, detail fetch, shaping, and for series a concurrent
// per-season episode fetch.
type Service struct {
	tmdb *metadata.Client
}

func NewService(tmdb *metadata.Client) *Service {
	return &Service{tmdb: tmdb}
}

// Details resolves an IMDB id into a fully shaped meta record. A nil record
// with nil error means the upstream has no item of the requested type for
// that id.
func (s *Service) Details(ctx context.Context, mediaType, imdbID string) (*models.Meta, error) {
	found, err := s.tmdb.FindByIMDBID(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	if mediaType == "movie" {
		if len(found.MovieResults) == 0 {
			return nil, nil
		}
		details, err := s.tmdb.MovieDetails(ctx, found.MovieResults[0].ID)
		if err != nil {
			return nil, err
		}
		return movieMeta(details, imdbID), nil
	}

	if len(found.TVResults) == 0 {
		return nil, nil
	}
	details, err := s.tmdb.SeriesDetails(ctx, found.TVResults[0].ID)
	if err != nil {
		return nil, err
	}
	m := seriesMeta(details, imdbID)
	if details.NumberOfSeasons > 0 {
		m.Videos = s.episodes(ctx, details.ID, details.NumberOfSeasons, imdbID)
	}
	return m, nil
}

func movieMeta(d *metadata.MovieDetails, imdbID string) *models.Meta {
	m := &models.Meta{
		ID:          imdbID,
		Type:        "movie",
		Name:        d.Title,
		Poster:      metadata.PosterURL(d.PosterPath),
		Background:  metadata.BackdropURL(d.BackdropPath),
		Description: d.Overview,
		ReleaseInfo: metadata.Year(d.ReleaseDate),
		Released:    releasedTimestamp(d.ReleaseDate),
		IMDBRating:  metadata.FormatRating(d.VoteAverage),
		Genres:      genreNames(d.Genres),
		Director:    directors(d.Credits),
		Cast:        topCast(d.Credits),
	}
	if d.Runtime > 0 {
		m.Runtime = fmt.Sprintf("%d min", d.Runtime)
	}
	m.Links = imdbLinks(imdbID, m.IMDBRating)
	return m
}

func seriesMeta(d *metadata.SeriesDetails, imdbID string) *models.Meta {
	m := &models.Meta{
		ID:          imdbID,
		Type:        "series",
		Name:        d.Name,
		Poster:      metadata.PosterURL(d.PosterPath),
		Background:  metadata.BackdropURL(d.BackdropPath),
		Description: d.Overview,
		ReleaseInfo: seriesReleaseInfo(d),
		Released:    releasedTimestamp(d.FirstAirDate),
		IMDBRating:  metadata.FormatRating(d.VoteAverage),
		Genres:      genreNames(d.Genres),
		Director:    directors(d.Credits),
		Cast:        topCast(d.Credits),
	}
	m.Links = imdbLinks(imdbID, m.IMDBRating)
	return m
}

// seriesReleaseInfo renders the year range: a closed range for ended or
// canceled shows (collapsed to a single year when start equals end), an
// open-ended "start-" otherwise.
func seriesReleaseInfo(d *metadata.SeriesDetails) string {
	start := metadata.Year(d.FirstAirDate)
	if start == "" {
		return ""
	}
	switch d.Status {
	case "Ended", "Canceled":
		end := metadata.Year(d.LastAirDate)
		if end != "" && end != start {
			return start + "-" + end
		}
		return start
	default:
		return start + "-"
	}
}

// episodes fetches every season concurrently and flattens the results into
// one list ordered by season then episode. A season whose fetch fails is
// treated as empty rather than failing the record.
func (s *Service) episodes(ctx context.Context, seriesID int64, seasons int, imdbID string) []models.Video {
	fetched := make([]*metadata.Season, seasons)
	p := pool.New().WithMaxGoroutines(maxConcurrentSeasons)
	for i := 0; i < seasons; i++ {
		i := i
		p.Go(func() {
			season, err := s.tmdb.SeasonDetails(ctx, seriesID, i+1)
			if err != nil {
				log.Printf("[meta] season %d fetch failed for %s: %v", i+1, imdbID, err)
				return
			}
			fetched[i] = season
		})
	}
	p.Wait()

	videos := make([]models.Video, 0)
	for _, season := range fetched {
		if season == nil {
			continue
		}
		for _, ep := range season.Episodes {
			v := models.Video{
				ID:        fmt.Sprintf("%s:%d:%d", imdbID, ep.SeasonNumber, ep.EpisodeNumber),
				Title:     ep.Name,
				Season:    ep.SeasonNumber,
				Episode:   ep.EpisodeNumber,
				Overview:  ep.Overview,
				Thumbnail: metadata.StillURL(ep.StillPath),
			}
			if ep.AirDate != "" {
				v.Released = ep.AirDate + "T00:00:00.000Z"
			}
			videos = append(videos, v)
		}
	}
	return videos
}

// releasedTimestamp renders a TMDB date as a midnight-UTC ISO timestamp.
func releasedTimestamp(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05") + ".000Z"
}

func genreNames(genres []metadata.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// directors extracts every crew member credited as Director.
func directors(c metadata.Credits) []string {
	var names []string
	for _, person := range c.Crew {
		if person.Job == "Director" {
			names = append(names, person.Name)
		}
	}
	return names
}

// topCast extracts the first few cast names in upstream billing order.
func topCast(c metadata.Credits) []string {
	var names []string
	for i, person := range c.Cast {
		if i >= castLimit {
			break
		}
		names = append(names, person.Name)
	}
	return names
}

// imdbLinks builds the canonical external link, annotated with the
// formatted rating when one exists.
func imdbLinks(imdbID, rating string) []models.MetaLink {
	name := "IMDb"
	if rating != "" {
		name = "IMDb " + rating
	}
	return []models.MetaLink{{
		Name:     name,
		Category: "imdb",
		URL:      "https://imdb.com/title/" + imdbID,
	}}
}
