// Package notify defines the notification interface and implementations
// for price alert delivery.
package notify

import (
	"context"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// Result reports the outcome of a delivery attempt. A Result with
// Delivered=false is not an error condition; Reason explains why the
// message did not go out.
type Result struct {
	Delivered bool
	Reason    string
}

// EndpointSource resolves the webhook endpoint at send time, so changes
// made through the settings API take effect without a restart.
type EndpointSource interface {
	WebhookURL(ctx context.Context) (string, error)
}

// StaticEndpoint is an EndpointSource backed by a fixed URL.
type StaticEndpoint string

// WebhookURL returns the fixed URL.
func (s StaticEndpoint) WebhookURL(context.Context) (string, error) {
	return string(s), nil
}

// Notifier defines the interface for sending price alert notifications.
type Notifier interface {
	SendPriceAlert(ctx context.Context, pack *domain.Pack, targetPrice float64) Result
	TestWebhook(ctx context.Context) Result
}
