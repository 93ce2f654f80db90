// Package main implements a mock tcgcsv server for local development.
// It serves canned responses from a JSON fixture to simulate the
// tcgcsv.com price mirror without hitting the real service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// fixture holds the canned catalog: a group listing plus products and
// price rows keyed by group ID. Rows stay raw so the fixture can carry
// fields the mock does not care about.
type fixture struct {
	Groups   []json.RawMessage            `json:"groups"`
	Products map[string][]json.RawMessage `json:"products"`
	Prices   map[string][]json.RawMessage `json:"prices"`
}

// resultsEnvelope mirrors the wrapper tcgcsv puts around every resource.
type resultsEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fix, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "groups", len(fix.Groups))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tcgplayer/3/groups", groupsHandler(logger, fix))
	mux.HandleFunc("GET /tcgplayer/3/{groupID}/products", resourceHandler(logger, "products", fix.Products))
	mux.HandleFunc("GET /tcgplayer/3/{groupID}/prices", resourceHandler(logger, "prices", fix.Prices))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock tcgcsv server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fix fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fix, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func groupsHandler(logger *slog.Logger, fix *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResults(w, fix.Groups)
		logger.Info("groups", "returned", len(fix.Groups))
	}
}

func resourceHandler(logger *slog.Logger, kind string, byGroup map[string][]json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := r.PathValue("groupID")
		rows := byGroup[groupID]
		writeResults(w, rows)
		logger.Info(kind, "group", groupID, "returned", len(rows))
	}
}

func writeResults(w http.ResponseWriter, rows []json.RawMessage) {
	// Return an empty array instead of null when no results.
	if rows == nil {
		rows = []json.RawMessage{}
	}
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(resultsEnvelope{Results: rows})
}
