package models

// MetaPreview is the abbreviated catalog entry the client renders in grids.
// IDs are IMDB ids so the client can cross-reference streams from other addons.
type MetaPreview struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Poster      string `json:"poster,omitempty"`
	Description string `json:"description,omitempty"`
	ReleaseInfo string `json:"releaseInfo,omitempty"`
	IMDBRating  string `json:"imdbRating,omitempty"`
}

// MetaLink is an external link attached to a meta record.
type MetaLink struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// Video is one episode entry of a series meta record.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	Released  string `json:"released,omitempty"`
	Overview  string `json:"overview,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Meta is the full detail record for a movie or series.
type Meta struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Poster      string     `json:"poster,omitempty"`
	Background  string     `json:"background,omitempty"`
	Description string     `json:"description,omitempty"`
	ReleaseInfo string     `json:"releaseInfo,omitempty"`
	Released    string     `json:"released,omitempty"`
	IMDBRating  string     `json:"imdbRating,omitempty"`
	Genres      []string   `json:"genres"`
	Runtime     string     `json:"runtime,omitempty"`
	Director    []string   `json:"director,omitempty"`
	Cast        []string   `json:"cast,omitempty"`
	Links       []MetaLink `json:"links"`
	Videos      []Video    `json:"videos,omitempty"`
}

// CatalogResponse is the wire envelope for catalog requests.
type CatalogResponse struct {
	Metas []MetaPreview `json:"metas"`
}

// MetaResponse is the wire envelope for meta requests. Meta is null when the
// requested id has no matching item upstream.
type MetaResponse struct {
	Meta *Meta `json:"meta"`
}
