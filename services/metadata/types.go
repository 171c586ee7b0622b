package metadata

// TMDB response payloads. Movie and series endpoints use different field
// names for title and first air date; Result carries both sets so discover
// and search pages decode into one shape.

// Result is one entry of a discover or search page.
type Result struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// DisplayTitle returns the movie title or series name, whichever is set.
func (r Result) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// AirDate returns the release date or first air date, whichever is set.
func (r Result) AirDate() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

// PagedResults is a single page of discover or search results.
type PagedResults struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// ExternalIDs holds the external identifiers TMDB knows for an item.
type ExternalIDs struct {
	IMDBID string `json:"imdb_id"`
}

// ReleaseDates is the per-country certification payload for movies.
type ReleaseDates struct {
	Results []CountryReleases `json:"results"`
}

type CountryReleases struct {
	CountryCode  string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseInfo `json:"release_dates"`
}

type ReleaseInfo struct {
	Certification string `json:"certification"`
}

// ContentRatings is the per-country certification payload for series.
type ContentRatings struct {
	Results []CountryRating `json:"results"`
}

type CountryRating struct {
	CountryCode string `json:"iso_3166_1"`
	Rating      string `json:"rating"`
}

// MovieDetails is the full movie record with credits, external ids and
// release dates appended.
type MovieDetails struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Overview     string       `json:"overview"`
	PosterPath   string       `json:"poster_path"`
	BackdropPath string       `json:"backdrop_path"`
	ReleaseDate  string       `json:"release_date"`
	Runtime      int          `json:"runtime"`
	VoteAverage  float64      `json:"vote_average"`
	Genres       []Genre      `json:"genres"`
	Credits      Credits      `json:"credits"`
	ExternalIDs  ExternalIDs  `json:"external_ids"`
	ReleaseDates ReleaseDates `json:"release_dates"`
}

// SeriesDetails is the full series record with credits, external ids and
// content ratings appended.
type SeriesDetails struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Overview        string         `json:"overview"`
	PosterPath      string         `json:"poster_path"`
	BackdropPath    string         `json:"backdrop_path"`
	FirstAirDate    string         `json:"first_air_date"`
	LastAirDate     string         `json:"last_air_date"`
	Status          string         `json:"status"`
	NumberOfSeasons int            `json:"number_of_seasons"`
	VoteAverage     float64        `json:"vote_average"`
	Genres          []Genre        `json:"genres"`
	Credits         Credits        `json:"credits"`
	ExternalIDs     ExternalIDs    `json:"external_ids"`
	ContentRatings  ContentRatings `json:"content_ratings"`
}

// FindResults is the response of the external-id translation endpoint.
type FindResults struct {
	MovieResults []Result `json:"movie_results"`
	TVResults    []Result `json:"tv_results"`
}

type Episode struct {
	Name          string `json:"name"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
	Overview      string `json:"overview"`
	StillPath     string `json:"still_path"`
}

// Season is one season's episode list.
type Season struct {
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}
