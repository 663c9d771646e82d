// Package metrics provides prometheus collectors for the access gate, the bearer token
// service, report ingestion and HTTP traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qaflow"

// Metrics holds all service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer        prometheus.Gatherer
	gateDecisions   *prometheus.CounterVec
	tokenVerify     *prometheus.CounterVec
	tokenOps        *prometheus.CounterVec
	reportsIngested *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers collectors on a dedicated registry, with go and process collectors included.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers collectors on reg and serves them from gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,
		gateDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "gate", Name: "decisions_total",
			Help: "Access gate decisions by action.",
		}, []string{"action"}),
		tokenVerify: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "token", Name: "verifications_total",
			Help: "Bearer token verifications by result (hit, miss, error).",
		}, []string{"result"}),
		tokenOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "token", Name: "operations_total",
			Help: "Bearer token lifecycle operations (issue, regenerate, revoke).",
		}, []string{"op"}),
		reportsIngested: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reports", Name: "ingested_total",
			Help: "Test reports stored by status.",
		}, []string{"status"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help: "HTTP request latency.", Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
}

// GateDecision counts one access gate decision.
func (m *Metrics) GateDecision(action string) {
	if m == nil {
		return
	}
	m.gateDecisions.WithLabelValues(action).Inc()
}

// TokenVerified counts one verification outcome.
func (m *Metrics) TokenVerified(result string) {
	if m == nil {
		return
	}
	m.tokenVerify.WithLabelValues(result).Inc()
}

// TokenOperation counts one token lifecycle operation.
func (m *Metrics) TokenOperation(op string) {
	if m == nil {
		return
	}
	m.tokenOps.WithLabelValues(op).Inc()
}

// ReportIngested counts one stored report.
func (m *Metrics) ReportIngested(status string) {
	if m == nil {
		return
	}
	m.reportsIngested.WithLabelValues(status).Inc()
}

// Middleware instruments request count and latency of next.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return promhttp.InstrumentHandlerDuration(m.httpDuration, promhttp.InstrumentHandlerCounter(m.httpRequests, next))
}

// Handler serves the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
