package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// SettingsStore keeps the user-facing settings, currently only the
// notification webhook endpoint.
type SettingsStore struct {
	kv KV
}

// NewSettingsStore creates a SettingsStore over kv.
func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// WebhookURL returns the configured webhook endpoint, or "" when none
// is set.
func (s *SettingsStore) WebhookURL(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, KeyWebhookURL)
	if err != nil {
		return "", fmt.Errorf("loading webhook url: %w", err)
	}
	if !ok {
		return "", nil
	}

	var url string
	if err := json.Unmarshal(raw, &url); err != nil {
		return "", fmt.Errorf("decoding webhook url: %w", err)
	}
	return url, nil
}

// SetWebhookURL stores the webhook endpoint. An empty string disables
// notifications.
func (s *SettingsStore) SetWebhookURL(ctx context.Context, url string) error {
	raw, err := json.Marshal(url)
	if err != nil {
		return fmt.Errorf("encoding webhook url: %w", err)
	}
	if err := s.kv.Set(ctx, KeyWebhookURL, raw); err != nil {
		return fmt.Errorf("saving webhook url: %w", err)
	}
	return nil
}
