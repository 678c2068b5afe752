package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	ResponsesRendered    *prometheus.CounterVec
	ResponseBuildErrors  *prometheus.CounterVec
	PhoneFormatFallbacks prometheus.Counter
	PHIDisclosures       *prometheus.CounterVec
	UploadsPresigned     prometheus.Counter
	CacheLookups         *prometheus.CounterVec
	EndpointLatency      *prometheus.HistogramVec
	SupplementLatency    *prometheus.HistogramVec
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResponsesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cobalt_responses_rendered_total",
			Help: "API responses built, by response type",
		}, []string{"type"}),
		ResponseBuildErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cobalt_response_build_errors_total",
			Help: "API response constructions that failed, by response type",
		}, []string{"type"}),
		PhoneFormatFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "cobalt_phone_format_fallbacks_total",
			Help: "Phone numbers returned unformatted because they could not be parsed",
		}),
		PHIDisclosures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cobalt_phi_disclosures_total",
			Help: "Responses that exposed protected health information, by reason",
		}, []string{"reason"}),
		UploadsPresigned: factory.NewCounter(prometheus.CounterOpts{
			Name: "cobalt_uploads_presigned_total",
			Help: "Presigned upload URLs issued",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cobalt_view_cache_lookups_total",
			Help: "View cache lookups, by cache and result",
		}, []string{"cache", "result"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cobalt_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds, by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		SupplementLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cobalt_supplement_load_seconds",
			Help:    "Time spent loading one embedded supplement, by supplement",
			Buckets: prometheus.DefBuckets,
		}, []string{"supplement"}),
	}
}

// IncrementRendered records a successfully built response.
func (m *Metrics) IncrementRendered(responseType string) {
	if m == nil {
		return
	}
	m.ResponsesRendered.WithLabelValues(responseType).Inc()
}

// IncrementBuildError records a failed response construction.
func (m *Metrics) IncrementBuildError(responseType string) {
	if m == nil {
		return
	}
	m.ResponseBuildErrors.WithLabelValues(responseType).Inc()
}

// PhoneFormatFallback satisfies format.Observer.
func (m *Metrics) PhoneFormatFallback() {
	if m == nil {
		return
	}
	m.PhoneFormatFallbacks.Inc()
}

// IncrementPHIDisclosure records a private-details rendering.
func (m *Metrics) IncrementPHIDisclosure(reason string) {
	if m == nil {
		return
	}
	m.PHIDisclosures.WithLabelValues(reason).Inc()
}

// IncrementUploadsPresigned records an issued upload URL.
func (m *Metrics) IncrementUploadsPresigned() {
	if m == nil {
		return
	}
	m.UploadsPresigned.Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (m *Metrics) RecordCacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveEndpointLatency records the latency of one request to a route.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

// ObserveSupplementLatency records how long one supplement took to load.
func (m *Metrics) ObserveSupplementLatency(supplement string, d time.Duration) {
	if m == nil {
		return
	}
	m.SupplementLatency.WithLabelValues(supplement).Observe(d.Seconds())
}
