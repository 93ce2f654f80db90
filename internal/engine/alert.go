package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/pokepack/pokepack-tracker/internal/metrics"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// dispatch pairs an alert with the pack snapshot it fired against.
type dispatch struct {
	alert domain.PriceAlert
	pack  domain.Pack
}

// EvaluateAlerts walks the stored alerts against the current pack
// snapshot and dispatches notifications for every alert whose target
// price has been met. An alert already triggered in notify-once mode is
// skipped. A failed send leaves the alert untriggered so the next cycle
// retries it.
func (e *Engine) EvaluateAlerts(ctx context.Context) error {
	alerts, err := e.alerts.List(ctx)
	if err != nil {
		return fmt.Errorf("listing alerts: %w", err)
	}
	if len(alerts) == 0 {
		return nil
	}

	var due []dispatch
	for _, a := range alerts {
		if a.Triggered && a.NotifyOnce {
			continue
		}
		metrics.AlertsEvaluatedTotal.Inc()

		pack, ok := e.Pack(a.PackID)
		if !ok {
			// The pack may have rotated out of the snapshot.
			continue
		}
		if pack.CurrentPrice <= a.TargetPrice {
			due = append(due, dispatch{alert: a, pack: pack})
		}
	}

	if len(due) == 0 {
		return nil
	}

	e.dispatchAll(ctx, due)
	return nil
}

// dispatchAll sends notifications with a bounded worker pool. Each
// worker mutates only its own alert's trigger state.
func (e *Engine) dispatchAll(ctx context.Context, due []dispatch) {
	jobs := make(chan dispatch)
	var wg sync.WaitGroup

	workers := min(e.dispatchWorkers, len(due))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range jobs {
				e.dispatchOne(ctx, d)
			}
		}()
	}

	for _, d := range due {
		jobs <- d
	}
	close(jobs)
	wg.Wait()
}

func (e *Engine) dispatchOne(ctx context.Context, d dispatch) {
	res := e.notifier.SendPriceAlert(ctx, &d.pack, d.alert.TargetPrice)
	if !res.Delivered {
		e.log.Warn("price alert not delivered",
			"pack", d.pack.Name,
			"target_price", d.alert.TargetPrice,
			"reason", res.Reason,
		)
		return
	}

	metrics.AlertsFiredTotal.Inc()
	e.log.Info("price alert fired",
		"pack", d.pack.Name,
		"current_price", d.pack.CurrentPrice,
		"target_price", d.alert.TargetPrice,
	)

	if d.alert.NotifyOnce {
		if err := e.alerts.MarkTriggered(ctx, d.alert.PackID); err != nil {
			e.log.Error("marking alert triggered failed",
				"pack_id", d.alert.PackID,
				"error", err,
			)
		}
	}
}
