package client

import (
	"context"
	"net/url"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

type upsertAlertRequest struct {
	TargetPrice float64 `json:"target_price"`
	NotifyOnce  bool    `json:"notify_once"`
}

// ListAlerts fetches all configured price alerts.
func (c *Client) ListAlerts(ctx context.Context) ([]domain.PriceAlert, error) {
	var alerts []domain.PriceAlert
	if err := c.get(ctx, "/api/v1/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// SetAlert creates or replaces the alert for a pack.
func (c *Client) SetAlert(ctx context.Context, packID string, targetPrice float64, notifyOnce bool) (*domain.PriceAlert, error) {
	req := upsertAlertRequest{TargetPrice: targetPrice, NotifyOnce: notifyOnce}

	var alert domain.PriceAlert
	if err := c.put(ctx, "/api/v1/alerts/"+url.PathEscape(packID), req, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// DeleteAlert removes the alert for a pack.
func (c *Client) DeleteAlert(ctx context.Context, packID string) error {
	return c.del(ctx, "/api/v1/alerts/"+url.PathEscape(packID), nil)
}
