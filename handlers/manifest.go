package handlers

import (
	"fmt"

	"kidshelf/models"
	"kidshelf/services/catalog"
	"kidshelf/services/kids"
)

// DefaultManifest describes the addon: one movie and one series catalog per
// age tier, each supporting genre, skip and search extras.
func DefaultManifest() models.Manifest {
	tiers := kids.Tiers()
	catalogs := make([]models.CatalogDefinition, 0, len(tiers)*2)
	for _, tier := range tiers {
		catalogs = append(catalogs,
			makeCatalog("movie", fmt.Sprintf("kids-movies-%d", tier), fmt.Sprintf("Movies %d+", tier)),
			makeCatalog("series", fmt.Sprintf("kids-series-%d", tier), fmt.Sprintf("Series %d+", tier)),
		)
	}

	return models.Manifest{
		ID:          "community.kidscontent",
		Version:     "1.1.0",
		Name:        "Kids Content",
		Description: "Safe, age-appropriate movie and TV catalogs for children. Four age groups (0+, 6+, 9+, 12+) powered by official MPAA and TV Parental Guidelines ratings. Genre filtering, search, and horror-free browsing included.",
		Resources:   []string{"catalog", "meta"},
		Types:       []string{"movie", "series"},
		IDPrefixes:  []string{"tt"},
		Catalogs:    catalogs,
		BehaviorHints: models.BehaviorHints{
			Adult: false,
		},
	}
}

func makeCatalog(mediaType, id, name string) models.CatalogDefinition {
	return models.CatalogDefinition{
		Type: mediaType,
		ID:   id,
		Name: name,
		Extra: []models.ExtraField{
			{Name: "genre", Options: catalog.GenreNames(mediaType)},
			{Name: "skip"},
			{Name: "search"},
		},
		ExtraSupported: []string{"genre", "skip", "search"},
	}
}
