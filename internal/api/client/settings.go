package client

import "context"

// WebhookSettings is the webhook configuration response body.
type WebhookSettings struct {
	WebhookURL string `json:"webhook_url"`
	Configured bool   `json:"configured"`
}

// WebhookTestResult reports the outcome of a webhook test send.
type WebhookTestResult struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

type setWebhookRequest struct {
	WebhookURL string `json:"webhook_url"`
}

// GetWebhook fetches the current webhook configuration.
func (c *Client) GetWebhook(ctx context.Context) (*WebhookSettings, error) {
	var settings WebhookSettings
	if err := c.get(ctx, "/api/v1/settings/webhook", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetWebhook stores a new webhook URL. An empty URL clears it.
func (c *Client) SetWebhook(ctx context.Context, url string) (*WebhookSettings, error) {
	var settings WebhookSettings
	if err := c.put(ctx, "/api/v1/settings/webhook", setWebhookRequest{WebhookURL: url}, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// TestWebhook sends a test message through the configured webhook.
func (c *Client) TestWebhook(ctx context.Context) (*WebhookTestResult, error) {
	var result WebhookTestResult
	if err := c.post(ctx, "/api/v1/settings/webhook/test", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
