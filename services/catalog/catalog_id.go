package catalog

import (
	"strconv"
	"strings"

	"kidshelf/services/kids"
)

// CatalogID is the parsed form of an opaque catalog identifier like
// "kids-movies-6".
type CatalogID struct {
	MediaType string // "movie" or "series"
	AgeTier   int
}

// ParseCatalogID parses "kids-<movies|series>-<tier>", where tier is one of
// the supported age tiers. Unrecognized ids are reported via ok=false, never
// an error: the host protocol expects an empty listing for catalogs this
// addon does not serve.
func ParseCatalogID(id string) (CatalogID, bool) {
	rest, found := strings.CutPrefix(id, "kids-")
	if !found {
		return CatalogID{}, false
	}
	kind, tierStr, found := strings.Cut(rest, "-")
	if !found {
		return CatalogID{}, false
	}
	var mediaType string
	switch kind {
	case "movies":
		mediaType = "movie"
	case "series":
		mediaType = "series"
	default:
		return CatalogID{}, false
	}
	if tierStr == "" || strings.Trim(tierStr, "0123456789") != "" {
		return CatalogID{}, false
	}
	tier, err := strconv.Atoi(tierStr)
	if err != nil {
		return CatalogID{}, false
	}
	for _, known := range kids.Tiers() {
		if tier == known {
			return CatalogID{MediaType: mediaType, AgeTier: tier}, true
		}
	}
	return CatalogID{}, false
}
