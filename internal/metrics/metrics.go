// Package metrics exposes Prometheus counters for the case engine.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ksar"

// Metrics holds the process collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	caseTransitions *prometheus.CounterVec
	ledgerFailures  *prometheus.CounterVec
	operations      *prometheus.CounterVec
	cacheRequests   *prometheus.CounterVec
}

// New creates collectors and registers them, together with the Go runtime
// and process collectors, on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		caseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "case_status_transitions_total",
			Help:      "Committed case status changes by old and new status.",
		}, []string{"from", "to"}),
		ledgerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_ledger_failures_total",
			Help:      "Activity ledger appends that failed and were skipped.",
		}, []string{"action"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Service operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_requests_total",
			Help:      "Aid-type catalog cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.caseTransitions,
		m.ledgerFailures,
		m.operations,
		m.cacheRequests,
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

// CaseTransition counts one committed status change.
func (m *Metrics) CaseTransition(from, to string) {
	if m == nil {
		return
	}
	m.caseTransitions.With(prometheus.Labels{"from": from, "to": to}).Inc()
}

// LedgerFailure counts one skipped ledger append.
func (m *Metrics) LedgerFailure(action string) {
	if m == nil {
		return
	}
	m.ledgerFailures.With(prometheus.Labels{"action": action}).Inc()
}

// Operation counts one finished service operation. outcome is usually
// "ok" or the failure kind.
func (m *Metrics) Operation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.With(prometheus.Labels{"operation": operation, "outcome": outcome}).Inc()
}

// CacheResult counts one catalog cache lookup: "hit", "miss" or "error".
func (m *Metrics) CacheResult(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.With(prometheus.Labels{"result": result}).Inc()
}
