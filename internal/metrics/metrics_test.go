package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RefreshDuration)
	assert.NotNil(t, RefreshPacksBuilt)
	assert.NotNil(t, RefreshFallbacksTotal)
	assert.NotNil(t, RefreshSupersededTotal)
	assert.NotNil(t, SourceRequestsTotal)
	assert.NotNil(t, SourceFailuresTotal)
	assert.NotNil(t, AlertsEvaluatedTotal)
	assert.NotNil(t, AlertsFiredTotal)
	assert.NotNil(t, NotificationFailuresTotal)
}
