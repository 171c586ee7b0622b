package kids

import (
	"strings"

	"kidshelf/services/metadata"
)

// Age tiers and the certification labels each tier may see. Tables are
// monotonic: every higher tier's allow-list is a superset of the lower
// tier's for both media types.
const DefaultTier = 6

var movieCerts = map[int][]string{
	0:  {"G"},
	6:  {"G", "PG"},
	9:  {"G", "PG"},
	12: {"G", "PG", "PG-13"},
}

var tvCerts = map[int][]string{
	0:  {"TV-Y"},
	6:  {"TV-Y", "TV-Y7", "TV-G"},
	9:  {"TV-Y", "TV-Y7", "TV-G", "TV-PG"},
	12: {"TV-Y", "TV-Y7", "TV-G", "TV-PG", "TV-14"},
}

// Default genre restriction per tier, applied on the discover path only
// when the caller did not pick a genre. Pipe means OR upstream.
// 16=Animation, 10751=Family, 12=Adventure, 14=Fantasy, 35=Comedy.
// Tier 12 has none: PG-13/TV-14 certifications filter well enough.
var defaultGenres = map[int]string{
	0: "16|10751",
	6: "16|10751",
	9: "16|10751|12|14|35",
}

// Horror (27) is excluded unconditionally at every tier.
var excludedGenres = map[int]string{
	0:  "27",
	6:  "27",
	9:  "27",
	12: "27",
}

// Tiers lists the supported age tiers in ascending order.
func Tiers() []int {
	return []int{0, 6, 9, 12}
}

// AllowedCertifications returns the certification allow-list for a tier and
// media type ("movie" or "series"). Unknown tiers fall back to the default
// tier's list.
func AllowedCertifications(tier int, mediaType string) []string {
	table := tvCerts
	if strings.ToLower(mediaType) == "movie" {
		table = movieCerts
	}
	if certs, ok := table[tier]; ok {
		return certs
	}
	return table[DefaultTier]
}

// DefaultGenreFilter returns the tier's default discover genre expression,
// or "" when the tier browses unrestricted.
func DefaultGenreFilter(tier int) string {
	return defaultGenres[tier]
}

// ExcludedGenreFilter returns the tier's excluded discover genre expression.
func ExcludedGenreFilter(tier int) string {
	return excludedGenres[tier]
}

// MovieAllowed reports whether any US release of the movie carries a
// certification inside the tier's allow-list. Movies with no US release
// data are blocked.
func MovieAllowed(rd metadata.ReleaseDates, tier int) bool {
	allowed := AllowedCertifications(tier, "movie")
	for _, country := range rd.Results {
		if country.CountryCode != metadata.CertificationCountry {
			continue
		}
		for _, release := range country.ReleaseDates {
			if containsCert(allowed, release.Certification) {
				return true
			}
		}
	}
	return false
}

// SeriesAllowed reports whether the series' US content rating is inside the
// tier's allow-list. Series with no US rating are blocked.
func SeriesAllowed(cr metadata.ContentRatings, tier int) bool {
	allowed := AllowedCertifications(tier, "series")
	for _, country := range cr.Results {
		if country.CountryCode != metadata.CertificationCountry {
			continue
		}
		return containsCert(allowed, country.Rating)
	}
	return false
}

func containsCert(allowed []string, cert string) bool {
	for _, a := range allowed {
		if a == cert {
			return true
		}
	}
	return false
}
