package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	fix, err := loadFixture(filepath.Join("testdata", "catalog.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fix
}

func TestLoadFixture(t *testing.T) {
	fix := loadTestFixture(t)
	if len(fix.Groups) == 0 {
		t.Fatal("expected groups in fixture")
	}
	for groupID := range fix.Products {
		if len(fix.Prices[groupID]) == 0 {
			t.Errorf("group %s has products but no prices", groupID)
		}
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestGroupsHandler(t *testing.T) {
	fix := loadTestFixture(t)
	handler := groupsHandler(testLogger(), fix)

	req := httptest.NewRequest(http.MethodGet, "/tcgplayer/3/groups", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var env resultsEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(env.Results) != len(fix.Groups) {
		t.Errorf("results=%d, want %d", len(env.Results), len(fix.Groups))
	}
}

func TestResourceHandler_KnownGroup(t *testing.T) {
	fix := loadTestFixture(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tcgplayer/3/{groupID}/products", resourceHandler(testLogger(), "products", fix.Products))

	req := httptest.NewRequest(http.MethodGet, "/tcgplayer/3/23821/products", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var env resultsEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(env.Results) != len(fix.Products["23821"]) {
		t.Errorf("results=%d, want %d", len(env.Results), len(fix.Products["23821"]))
	}
}

func TestResourceHandler_UnknownGroupReturnsEmptyArray(t *testing.T) {
	fix := loadTestFixture(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tcgplayer/3/{groupID}/prices", resourceHandler(testLogger(), "prices", fix.Prices))

	req := httptest.NewRequest(http.MethodGet, "/tcgplayer/3/99999/prices", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if body != "{\"results\":[]}\n" {
		t.Errorf("body=%q, want empty results array", body)
	}
}
