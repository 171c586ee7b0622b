package main

import (
	"fmt"
	"log"
	"net/http"

	"gopkg.in/natefinch/lumberjack.v2"

	"kidshelf/config"
	"kidshelf/handlers"
	"kidshelf/services/catalog"
	"kidshelf/services/meta"
	"kidshelf/services/metadata"
	"kidshelf/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[startup] %v", err)
	}
	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	tmdb := metadata.NewClient(cfg.TMDBAPIToken, cfg.Language, nil, nil)

	addon := &handlers.AddonHandler{
		CatalogService: catalog.NewService(tmdb),
		MetaService:    meta.NewService(tmdb),
	}

	r := utils.NewRouter()
	addon.Routes(r)
	r.Path("/").Handler(handlers.NewLandingHandler()).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("[startup] kids content addon listening on %s", addr)
	log.Printf("[startup] manifest available at http://127.0.0.1:%d/manifest.json", cfg.Port)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("[startup] server exited: %v", err)
	}
}
