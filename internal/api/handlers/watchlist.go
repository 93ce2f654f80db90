package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pokepack/pokepack-tracker/internal/store"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// WatchlistHandler handles watchlist operations.
type WatchlistHandler struct {
	store   *store.WatchlistStore
	catalog Catalog
	now     func() time.Time
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(s *store.WatchlistStore, cat Catalog) *WatchlistHandler {
	return &WatchlistHandler{store: s, catalog: cat, now: time.Now}
}

// List handles GET /api/v1/watchlist.
//
// @Summary List watchlist items
// @Description Returns all saved watchlist snapshots.
// @Tags watchlist
// @Produce json
// @Success 200 {array} domain.WatchlistItem
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchlist [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	items, err := h.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing watchlist: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.WatchlistItem{}
	}

	return c.JSON(http.StatusOK, items)
}

type addWatchlistRequest struct {
	PackID string `json:"pack_id" example:"tcg-23901-610"`
}

// Add handles POST /api/v1/watchlist.
//
// The saved item is a snapshot of the pack at save time; it is not kept
// in sync with live pricing.
//
// @Summary Add a pack to the watchlist
// @Description Saves a snapshot of the pack's current state.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param body body addWatchlistRequest true "Pack to save"
// @Success 201 {object} domain.WatchlistItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchlist [post]
func (h *WatchlistHandler) Add(c echo.Context) error {
	var req addWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.PackID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "pack_id is required",
		})
	}

	pack, ok := h.catalog.Pack(req.PackID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "pack not found",
		})
	}

	item := domain.SnapshotFromPack(&pack, h.now().UTC())
	if err := h.store.Add(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "saving watchlist item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, item)
}

// Remove handles DELETE /api/v1/watchlist/:id.
//
// @Summary Remove a watchlist item
// @Description Removes a saved item by pack ID. Removing a missing item is a no-op.
// @Tags watchlist
// @Param id path string true "Pack ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchlist/{id} [delete]
func (h *WatchlistHandler) Remove(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Remove(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "removing watchlist item: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/watchlist.
//
// @Summary Clear the watchlist
// @Description Removes every saved item.
// @Tags watchlist
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchlist [delete]
func (h *WatchlistHandler) Clear(c echo.Context) error {
	if err := h.store.Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "clearing watchlist: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
