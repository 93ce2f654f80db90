package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// AlertStore persists price alerts under a single logical key. The
// one-alert-per-pack invariant is structural: Upsert replaces by
// PackID. All mutations run read-modify-write under one mutex so
// trigger-flag updates are linearized.
type AlertStore struct {
	kv KV
	mu sync.Mutex
}

// NewAlertStore creates an AlertStore over kv.
func NewAlertStore(kv KV) *AlertStore {
	return &AlertStore{kv: kv}
}

// List returns all alerts, in stored order.
func (s *AlertStore) List(ctx context.Context) ([]domain.PriceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Upsert inserts the alert or replaces the existing alert with the
// same PackID.
func (s *AlertStore) Upsert(ctx context.Context, alert domain.PriceAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range alerts {
		if alerts[i].PackID == alert.PackID {
			alerts[i] = alert
			replaced = true
			break
		}
	}
	if !replaced {
		alerts = append(alerts, alert)
	}

	return s.save(ctx, alerts)
}

// Remove deletes the alert for packID, if any.
func (s *AlertStore) Remove(ctx context.Context, packID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := alerts[:0]
	for _, a := range alerts {
		if a.PackID != packID {
			kept = append(kept, a)
		}
	}

	return s.save(ctx, kept)
}

// Get returns the alert for packID, with ok=false when absent.
func (s *AlertStore) Get(ctx context.Context, packID string) (domain.PriceAlert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.load(ctx)
	if err != nil {
		return domain.PriceAlert{}, false, err
	}
	for _, a := range alerts {
		if a.PackID == packID {
			return a, true, nil
		}
	}
	return domain.PriceAlert{}, false, nil
}

// MarkTriggered flips the Triggered flag for packID. Idempotent; a
// missing alert (removed mid-evaluation) is not an error.
func (s *AlertStore) MarkTriggered(ctx context.Context, packID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range alerts {
		if alerts[i].PackID == packID {
			alerts[i].Triggered = true
			return s.save(ctx, alerts)
		}
	}
	return nil
}

func (s *AlertStore) load(ctx context.Context) ([]domain.PriceAlert, error) {
	raw, ok, err := s.kv.Get(ctx, KeyAlerts)
	if err != nil {
		return nil, fmt.Errorf("loading alerts: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var alerts []domain.PriceAlert
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, fmt.Errorf("decoding alerts: %w", err)
	}
	return alerts, nil
}

func (s *AlertStore) save(ctx context.Context, alerts []domain.PriceAlert) error {
	if alerts == nil {
		alerts = []domain.PriceAlert{}
	}
	raw, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("encoding alerts: %w", err)
	}
	if err := s.kv.Set(ctx, KeyAlerts, raw); err != nil {
		return fmt.Errorf("saving alerts: %w", err)
	}
	return nil
}
