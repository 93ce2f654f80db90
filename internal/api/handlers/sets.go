package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// SetsHandler handles set and stats query endpoints.
type SetsHandler struct {
	catalog Catalog
}

// NewSetsHandler creates a new SetsHandler.
func NewSetsHandler(cat Catalog) *SetsHandler {
	return &SetsHandler{catalog: cat}
}

// ListSetsOutput is the response for listing sets.
type ListSetsOutput struct {
	Body struct {
		Sets  []domain.Set `json:"sets"`
		Total int          `json:"total"`
	}
}

// StatsOutput is the response for catalog statistics.
type StatsOutput struct {
	Body struct {
		domain.CatalogStats
		LastRefreshed *time.Time `json:"last_refreshed,omitempty"`
	}
}

// ListSets returns the sets in the current snapshot, newest first.
func (h *SetsHandler) ListSets(context.Context, *struct{}) (*ListSetsOutput, error) {
	sets := h.catalog.Sets()

	resp := &ListSetsOutput{}
	resp.Body.Sets = sets
	resp.Body.Total = len(sets)
	return resp, nil
}

// GetStats summarizes the current snapshot.
func (h *SetsHandler) GetStats(context.Context, *struct{}) (*StatsOutput, error) {
	resp := &StatsOutput{}
	resp.Body.CatalogStats = h.catalog.Stats()
	if t := h.catalog.LastRefreshed(); !t.IsZero() {
		resp.Body.LastRefreshed = &t
	}
	return resp, nil
}

// RegisterSetRoutes registers set and stats endpoints with the Huma API.
func RegisterSetRoutes(api huma.API, h *SetsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sets",
		Method:      http.MethodGet,
		Path:        "/api/v1/sets",
		Summary:     "List sets",
		Description: "Returns the card sets in the current snapshot, newest release first.",
		Tags:        []string{"sets"},
	}, h.ListSets)

	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Catalog statistics",
		Description: "Summarizes the current snapshot: pack counts, average price, and deal counts.",
		Tags:        []string{"stats"},
	}, h.GetStats)
}
