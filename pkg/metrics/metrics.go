package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fanhub_webhooks"

// Validation results recorded by ObserveValidation.
const (
	ResultValid   = "valid"
	ResultMissing = "missing"
	ResultInvalid = "invalid"
)

// Metrics holds the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	validations     *prometheus.CounterVec
	forwards        *prometheus.CounterVec
	forwardDuration prometheus.Histogram
	flagged         *prometheus.CounterVec
}

// New registers the collectors on reg. reg must also be a Gatherer for
// Handler to expose them; prometheus.NewRegistry satisfies both.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_validations_total",
			Help:      "Webhook signature validations by endpoint and result",
		}, []string{"endpoint", "result"}),
		forwards: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_forwards_total",
			Help:      "Forward attempts to the workflow engine by outcome",
		}, []string{"outcome"}),
		forwardDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_forward_duration_seconds",
			Help:      "Latency of forward attempts to the workflow engine",
			Buckets:   prometheus.DefBuckets,
		}),
		flagged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_flagged_total",
			Help:      "Project submissions flagged by the content safety check",
		}, []string{"category"}),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Handler exposes the registered collectors.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveValidation records a signature validation outcome.
func (m *Metrics) ObserveValidation(endpoint, result string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(endpoint, result).Inc()
}

// ObserveForward records a forward attempt.
func (m *Metrics) ObserveForward(success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.forwards.WithLabelValues(outcome).Inc()
	m.forwardDuration.Observe(elapsed.Seconds())
}

// ObserveFlagged records a flagged submission.
func (m *Metrics) ObserveFlagged(category string) {
	if m == nil {
		return
	}
	m.flagged.WithLabelValues(category).Inc()
}
