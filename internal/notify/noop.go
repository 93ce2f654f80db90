package notify

import (
	"context"
	"log/slog"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceAlert logs and discards a price alert.
func (n *NoOpNotifier) SendPriceAlert(_ context.Context, pack *domain.Pack, targetPrice float64) Result {
	n.log.Debug("notification discarded (no backend configured)",
		"pack", pack.Name,
		"current_price", pack.CurrentPrice,
		"target_price", targetPrice,
	)
	return Result{Reason: "no notification backend configured"}
}

// TestWebhook reports that no backend is configured.
func (n *NoOpNotifier) TestWebhook(context.Context) Result {
	n.log.Debug("webhook test discarded (no backend configured)")
	return Result{Reason: "no notification backend configured"}
}
