package handlers

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var landingAssets embed.FS

// LandingHandler serves the installation landing page at the root path.
type LandingHandler struct {
	page []byte
}

func NewLandingHandler() *LandingHandler {
	page, err := landingAssets.ReadFile("static/index.html")
	if err != nil {
		panic("landing page missing from embedded assets: " + err.Error())
	}
	return &LandingHandler{page: page}
}

func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(h.page)
}
