package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewOpsRouter builds the operator listener: a health probe and pprof under /debug
func NewOpsRouter(analyzer AreaAnalyzer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		rows, loaded := analyzer.RowCount()
		w.Header().Set("Content-Type", "application/json")
		if !loaded {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{"status": "unavailable"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "rows": rows})
	})
	r.Mount("/debug", middleware.Profiler())

	return r
}
