package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"funnel-engine/internal/core/domain"
)

func TestTrackers(t *testing.T) {
	m := New()

	m.TrackAssignment(1, 2)
	m.TrackAssignment(1, 2)
	m.TrackVisit(true)
	m.TrackEvent(domain.EventSale)
	m.TrackListenerFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AssignmentsTotal.WithLabelValues("1", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VisitsTotal.WithLabelValues("returning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("sale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListenerFailuresTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TrackAssignment(1, 1)
		m.TrackVisit(false)
		m.TrackEvent(domain.EventPageView)
		m.TrackListenerFailure()
	})
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/funnel/c/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, slug := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/funnel/c/"+slug, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/funnel/c/{slug}", "418")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "funnel_http_requests_total"))
}
