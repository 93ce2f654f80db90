package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokepack/pokepack-tracker/pkg/logger"
)

func TestNoOpNotifier_SendPriceAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Discard())
	res := n.SendPriceAlert(context.Background(), testPack(119), 120)
	assert.False(t, res.Delivered)
	assert.Equal(t, "no notification backend configured", res.Reason)
}

func TestNoOpNotifier_TestWebhook(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Discard())
	res := n.TestWebhook(context.Background())
	assert.False(t, res.Delivered)
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
)
