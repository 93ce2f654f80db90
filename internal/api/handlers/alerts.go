package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pokepack/pokepack-tracker/internal/store"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// AlertHandler handles price alert CRUD operations.
type AlertHandler struct {
	store   *store.AlertStore
	catalog Catalog
	now     func() time.Time
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s *store.AlertStore, cat Catalog) *AlertHandler {
	return &AlertHandler{store: s, catalog: cat, now: time.Now}
}

// List handles GET /api/v1/alerts.
//
// @Summary List alerts
// @Description Returns all configured price alerts.
// @Tags alerts
// @Produce json
// @Success 200 {array} domain.PriceAlert
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	alerts, err := h.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing alerts: " + err.Error(),
		})
	}

	if alerts == nil {
		alerts = []domain.PriceAlert{}
	}

	return c.JSON(http.StatusOK, alerts)
}

type upsertAlertRequest struct {
	TargetPrice float64 `json:"target_price" example:"125.00"`
	NotifyOnce  bool    `json:"notify_once"  example:"true"`
}

// Upsert handles PUT /api/v1/alerts/:packId.
//
// Setting an alert for a pack that already has one replaces it and
// re-arms the trigger.
//
// @Summary Create or replace an alert
// @Description Sets the target price alert for a pack. At most one alert exists per pack.
// @Tags alerts
// @Accept json
// @Produce json
// @Param packId path string true "Pack ID"
// @Param alert body upsertAlertRequest true "Alert settings"
// @Success 200 {object} domain.PriceAlert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{packId} [put]
func (h *AlertHandler) Upsert(c echo.Context) error {
	packID := c.Param("packId")

	var req upsertAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.TargetPrice <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "target_price must be greater than zero",
		})
	}

	alert := domain.PriceAlert{
		PackID:      packID,
		TargetPrice: req.TargetPrice,
		NotifyOnce:  req.NotifyOnce,
		CreatedAt:   h.now().UTC(),
	}

	// Denormalize pack details for notification rendering; the alert
	// survives even if the pack later rotates out of the snapshot.
	if pack, ok := h.catalog.Pack(packID); ok {
		alert.PackName = pack.Name
		alert.SetName = pack.SetName
		alert.ProductType = pack.ProductType
	}

	if err := h.store.Upsert(c.Request().Context(), alert); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "saving alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, alert)
}

// Delete handles DELETE /api/v1/alerts/:packId.
//
// @Summary Delete an alert
// @Description Removes the alert for a pack. Deleting a missing alert is a no-op.
// @Tags alerts
// @Param packId path string true "Pack ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{packId} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	packID := c.Param("packId")

	if err := h.store.Remove(c.Request().Context(), packID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting alert: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
