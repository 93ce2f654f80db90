package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pokepack/pokepack-tracker/internal/notify"
	"github.com/pokepack/pokepack-tracker/internal/store"
)

// SettingsHandler handles notification settings.
type SettingsHandler struct {
	store    *store.SettingsStore
	notifier notify.Notifier
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s *store.SettingsStore, n notify.Notifier) *SettingsHandler {
	return &SettingsHandler{store: s, notifier: n}
}

type webhookResponse struct {
	WebhookURL string `json:"webhook_url"`
	Configured bool   `json:"configured"`
}

// GetWebhook handles GET /api/v1/settings/webhook.
//
// @Summary Get the Discord webhook endpoint
// @Description Returns the configured webhook URL, if any.
// @Tags settings
// @Produce json
// @Success 200 {object} webhookResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/settings/webhook [get]
func (h *SettingsHandler) GetWebhook(c echo.Context) error {
	url, err := h.store.WebhookURL(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "reading webhook settings: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, webhookResponse{
		WebhookURL: url,
		Configured: url != "",
	})
}

type setWebhookRequest struct {
	WebhookURL string `json:"webhook_url" example:"https://discord.com/api/webhooks/123/abc"`
}

// SetWebhook handles PUT /api/v1/settings/webhook.
//
// An empty URL clears the endpoint and disables alert delivery.
//
// @Summary Set the Discord webhook endpoint
// @Description Stores the webhook URL used for price alert delivery.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body setWebhookRequest true "Webhook URL"
// @Success 200 {object} webhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/settings/webhook [put]
func (h *SettingsHandler) SetWebhook(c echo.Context) error {
	var req setWebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	url := strings.TrimSpace(req.WebhookURL)
	if url != "" && !strings.HasPrefix(url, "https://") {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "webhook_url must be an https URL",
		})
	}

	if err := h.store.SetWebhookURL(c.Request().Context(), url); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "saving webhook settings: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, webhookResponse{
		WebhookURL: url,
		Configured: url != "",
	})
}

type webhookTestResponse struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

// TestWebhook handles POST /api/v1/settings/webhook/test.
//
// @Summary Send a test message to the webhook
// @Description Posts a connectivity-check embed to the configured webhook.
// @Tags settings
// @Produce json
// @Success 200 {object} webhookTestResponse
// @Router /api/v1/settings/webhook/test [post]
func (h *SettingsHandler) TestWebhook(c echo.Context) error {
	res := h.notifier.TestWebhook(c.Request().Context())
	return c.JSON(http.StatusOK, webhookTestResponse{
		Delivered: res.Delivered,
		Reason:    res.Reason,
	})
}
