package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"kidshelf/models"
	"kidshelf/services/catalog"
	"kidshelf/services/meta"
	"kidshelf/services/metadata"
)

// Browser-side cache hints per resource class, in seconds. Matches the
// upstream TTL classes one order of magnitude down.
const (
	catalogMaxAge = 3600
	metaMaxAge    = 43200
)

type catalogService interface {
	Listings(ctx context.Context, req catalog.Request) ([]models.MetaPreview, error)
}

type metaService interface {
	Details(ctx context.Context, mediaType, imdbID string) (*models.Meta, error)
}

var _ catalogService = (*catalog.Service)(nil)
var _ metaService = (*meta.Service)(nil)

// AddonHandler serves the addon wire protocol: manifest, catalog and meta
// resources as JSON over GET.
type AddonHandler struct {
	CatalogService catalogService
	MetaService    metaService
}

// Routes registers the addon resource routes.
func (h *AddonHandler) Routes(r *mux.Router) {
	r.HandleFunc("/manifest.json", h.Manifest).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{type}/{id}.json", h.Catalog).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{type}/{id}/{extra}.json", h.Catalog).Methods(http.MethodGet)
	r.HandleFunc("/meta/{type}/{id}.json", h.Meta).Methods(http.MethodGet)
}

func (h *AddonHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalogMaxAge, DefaultManifest())
}

func (h *AddonHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	req := catalog.Request{CatalogID: vars["id"]}
	if vars["extra"] != "" {
		applyExtra(&req, extraSegment(r))
	}

	metas, err := h.CatalogService.Listings(r.Context(), req)
	if err != nil {
		log.Printf("[addon] catalog %s failed: %v", req.CatalogID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, catalogMaxAge, models.CatalogResponse{Metas: metas})
}

func (h *AddonHandler) Meta(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := vars["type"]
	id := vars["id"]

	// Only IMDB-prefixed ids belong to this addon's id space.
	if !strings.HasPrefix(id, "tt") {
		writeJSON(w, metaMaxAge, models.MetaResponse{})
		return
	}

	detail, err := h.MetaService.Details(r.Context(), mediaType, id)
	if err != nil {
		log.Printf("[addon] meta %s/%s failed: %v", mediaType, id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, metaMaxAge, models.MetaResponse{Meta: detail})
}

// extraSegment returns the trailing extra path segment still in its encoded
// form. The decoded segment from the router cannot be used: a value like
// "Action%20%26%20Adventure" decodes to a literal "&" that would then be
// mistaken for a pair separator.
func extraSegment(r *http.Request) string {
	path := strings.TrimSuffix(r.URL.EscapedPath(), ".json")
	return path[strings.LastIndex(path, "/")+1:]
}

// applyExtra decodes the url-encoded extra path segment ("skip=20&genre=X")
// into the catalog request. Malformed segments are ignored.
func applyExtra(req *catalog.Request, extra string) {
	vals, err := url.ParseQuery(extra)
	if err != nil {
		return
	}
	if skip := vals.Get("skip"); skip != "" {
		if n, err := strconv.Atoi(skip); err == nil && n >= 0 {
			req.Skip = n
		}
	}
	req.Genre = vals.Get("genre")
	req.Search = vals.Get("search")
}

func writeJSON(w http.ResponseWriter, maxAge int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(maxAge))
	json.NewEncoder(w).Encode(v)
}

// writeError maps upstream failures to 502 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var upstream *metadata.UpstreamError
	if errors.As(err, &upstream) {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
