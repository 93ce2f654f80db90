// Package engine orchestrates catalog refreshes and alert evaluation.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pokepack/pokepack-tracker/internal/catalog"
	"github.com/pokepack/pokepack-tracker/internal/metrics"
	"github.com/pokepack/pokepack-tracker/internal/notify"
	"github.com/pokepack/pokepack-tracker/internal/store"
	"github.com/pokepack/pokepack-tracker/pkg/pricing"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

const defaultDispatchWorkers = 4

// Engine holds the current pack snapshot and drives refresh cycles.
type Engine struct {
	builder  *catalog.Builder
	alerts   *store.AlertStore
	notifier notify.Notifier
	log      *slog.Logger

	dispatchWorkers int
	now             func() time.Time

	mu          sync.RWMutex
	packs       []domain.Pack
	sets        []domain.Set
	refreshedAt time.Time

	// generation increments on every Refresh call; a refresh whose
	// generation is no longer current discards its results.
	genMu      sync.Mutex
	generation uint64
	applied    uint64
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	b *catalog.Builder,
	alerts *store.AlertStore,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		builder:         b,
		alerts:          alerts,
		notifier:        n,
		log:             slog.Default(),
		dispatchWorkers: defaultDispatchWorkers,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDispatchWorkers bounds the number of concurrent notification sends.
func WithDispatchWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.dispatchWorkers = n
		}
	}
}

// WithClock overrides the snapshot timestamp source. Test hook.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Refresh rebuilds the pack catalog and evaluates alerts against it.
// Source failures never surface as errors here; the builder falls back
// to generated data so the snapshot is always non-empty. When a newer
// Refresh starts while this one is in flight, this one's results are
// discarded whole, never merged.
func (e *Engine) Refresh(ctx context.Context) error {
	gen := e.nextGeneration()

	start := time.Now()
	defer func() {
		metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	}()

	sets := e.builder.ListSets(ctx)
	packs := e.builder.BuildPacks(ctx, sets)

	if !e.apply(gen, sets, packs) {
		metrics.RefreshSupersededTotal.Inc()
		e.log.Info("refresh superseded, discarding results", "generation", gen)
		return nil
	}

	metrics.RefreshPacksBuilt.Set(float64(len(packs)))
	if len(packs) > 0 && !packs[0].IsRealData {
		metrics.RefreshFallbacksTotal.Inc()
	}

	e.log.Info("refresh complete",
		"generation", gen,
		"sets", len(sets),
		"packs", len(packs),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)

	if err := e.EvaluateAlerts(ctx); err != nil {
		e.log.Error("alert evaluation failed", "error", err)
	}

	return nil
}

func (e *Engine) nextGeneration() uint64 {
	e.genMu.Lock()
	defer e.genMu.Unlock()
	e.generation++
	return e.generation
}

// apply installs the snapshot unless a newer refresh has started or
// already landed.
func (e *Engine) apply(gen uint64, sets []domain.Set, packs []domain.Pack) bool {
	e.genMu.Lock()
	if gen != e.generation || gen <= e.applied {
		e.genMu.Unlock()
		return false
	}
	e.applied = gen
	e.genMu.Unlock()

	e.mu.Lock()
	e.sets = sets
	e.packs = packs
	e.refreshedAt = e.now()
	e.mu.Unlock()
	return true
}

// Packs returns a copy of the current pack snapshot.
func (e *Engine) Packs() []domain.Pack {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Pack, len(e.packs))
	copy(out, e.packs)
	return out
}

// Pack looks up a single pack by ID in the current snapshot.
func (e *Engine) Pack(id string) (domain.Pack, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := range e.packs {
		if e.packs[i].ID == id {
			return e.packs[i], true
		}
	}
	return domain.Pack{}, false
}

// Sets returns a copy of the current set snapshot.
func (e *Engine) Sets() []domain.Set {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Set, len(e.sets))
	copy(out, e.sets)
	return out
}

// LastRefreshed reports when the current snapshot was installed. Zero
// before the first refresh lands.
func (e *Engine) LastRefreshed() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.refreshedAt
}

// Stats summarizes the current snapshot.
func (e *Engine) Stats() domain.CatalogStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := domain.CatalogStats{
		TotalPacks: len(e.packs),
		IsRealData: len(e.packs) > 0,
	}

	var sum float64
	for i := range e.packs {
		p := &e.packs[i]
		if !p.IsRealData {
			stats.IsRealData = false
		}
		if p.CurrentPrice <= 0 {
			continue
		}
		stats.WithPrices++
		sum += p.CurrentPrice

		switch pricing.ClassifyPack(p) {
		case domain.StatusGreatDeal:
			stats.GreatDeals++
			stats.BelowReference++
		case domain.StatusBelowReference:
			stats.BelowReference++
		}
	}

	if stats.WithPrices > 0 {
		stats.AveragePrice = sum / float64(stats.WithPrices)
	}
	return stats
}
