package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Refresher defines the interface for triggering a catalog refresh.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshHandler handles manual refresh trigger requests.
type RefreshHandler struct {
	refresher Refresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r Refresher) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status string `json:"status" example:"refresh completed" doc:"Refresh status"`
	}
}

// Refresh runs a full catalog refresh cycle.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	if err := h.refresher.Refresh(ctx); err != nil {
		return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Status = "refresh completed"
	return resp, nil
}

// RegisterRefreshRoutes registers the refresh endpoint with the Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Trigger a catalog refresh",
		Description: "Rebuilds the pack snapshot from the pricing source and evaluates alerts against it.",
		Tags:        []string{"refresh"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Refresh)
}
