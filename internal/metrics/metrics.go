package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"funnel-engine/internal/core/domain"
)

// Metrics holds the Prometheus collectors of the funnel engine. All
// recording methods are safe to call on a nil *Metrics, which records
// nothing.
type Metrics struct {
	// Funnel counters
	AssignmentsTotal      *prometheus.CounterVec
	VisitsTotal           *prometheus.CounterVec
	EventsTotal           *prometheus.CounterVec
	ListenerFailuresTotal prometheus.Counter

	// HTTP
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with its own registry, including the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		AssignmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funnel_assignments_total",
				Help: "New visitors assigned to a variation set",
			},
			[]string{"campaign_id", "variation_set_id"},
		),
		VisitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funnel_visits_total",
				Help: "Landing page visits by visitor kind",
			},
			[]string{"kind"},
		),
		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funnel_events_total",
				Help: "Funnel events appended to the log",
			},
			[]string{"event_type"},
		),
		ListenerFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "funnel_registration_listener_failures_total",
				Help: "Registration notices that could not be delivered",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funnel_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "funnel_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.AssignmentsTotal,
		m.VisitsTotal,
		m.EventsTotal,
		m.ListenerFailuresTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TrackAssignment counts a first-time assignment.
func (m *Metrics) TrackAssignment(campaignID, variationSetID int64) {
	if m == nil {
		return
	}
	m.AssignmentsTotal.WithLabelValues(strconv.FormatInt(campaignID, 10), strconv.FormatInt(variationSetID, 10)).Inc()
}

// TrackVisit counts a landing page hit as "new" or "returning".
func (m *Metrics) TrackVisit(returning bool) {
	if m == nil {
		return
	}
	kind := "new"
	if returning {
		kind = "returning"
	}
	m.VisitsTotal.WithLabelValues(kind).Inc()
}

// TrackEvent counts an appended event.
func (m *Metrics) TrackEvent(t domain.EventType) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(string(t)).Inc()
}

// TrackListenerFailure counts an undelivered registration notice.
func (m *Metrics) TrackListenerFailure() {
	if m == nil {
		return
	}
	m.ListenerFailuresTotal.Inc()
}
