package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementRendered("account")
	m.IncrementRendered("account")
	m.PhoneFormatFallback()
	m.RecordCacheLookup("account", true)
	m.RecordCacheLookup("account", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResponsesRendered.WithLabelValues("account")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PhoneFormatFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("account", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("account", "miss")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementRendered("account")
		m.PhoneFormatFallback()
		m.IncrementPHIDisclosure("viewer")
		m.IncrementUploadsPresigned()
		m.RecordCacheLookup("account", true)
		m.ObserveEndpointLatency("/accounts/{accountId}", 0.1)
		m.ObserveSupplementLatency("notes", time.Millisecond)
	})
}

func TestEndpointLatency(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveEndpointLatency("/accounts/{accountId}", 0.05)
	m.ObserveEndpointLatency("/accounts/{accountId}", 0.2)

	assert.Equal(t, 1, testutil.CollectAndCount(m.EndpointLatency))
}

func TestSupplementLatency(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSupplementLatency("notes", 5*time.Millisecond)
	m.ObserveSupplementLatency("triages", 8*time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.SupplementLatency))
}
