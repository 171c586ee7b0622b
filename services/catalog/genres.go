package catalog

type genreEntry struct {
	name string
	id   string
}

// Genre filters surfaced in the manifest, mapped to TMDB genre ids. Order
// matters: the manifest renders options in this order.
var movieGenres = []genreEntry{
	{"Animation", "16"},
	{"Adventure", "12"},
	{"Comedy", "35"},
	{"Family", "10751"},
	{"Fantasy", "14"},
	{"Music", "10402"},
	{"Documentary", "99"},
}

var seriesGenres = []genreEntry{
	{"Animation", "16"},
	{"Action & Adventure", "10759"},
	{"Comedy", "35"},
	{"Family", "10751"},
	{"Kids", "10762"},
	{"Documentary", "99"},
}

// GenreNames lists the genre filter options for a media type, in manifest
// order.
func GenreNames(mediaType string) []string {
	entries := seriesGenres
	if mediaType == "movie" {
		entries = movieGenres
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// genreID resolves a genre name to the upstream's internal identifier.
func genreID(mediaType, name string) (string, bool) {
	entries := seriesGenres
	if mediaType == "movie" {
		entries = movieGenres
	}
	for _, e := range entries {
		if e.name == name {
			return e.id, true
		}
	}
	return "", false
}
