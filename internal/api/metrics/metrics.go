// Package metrics defines the console's custom Prometheus metrics. They are
// registered with the default registry at package init via promauto and
// exposed on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdam/billing-console/internal/core/ports"
)

const namespace = "pdam_console"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the PDAM REST API.
// Labels:
//   - endpoint: route template, e.g. "PUT /services/{id}"
//   - outcome: "ok" or an error kind ("validation", "conflict", "transport", …)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of PDAM API calls, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures PDAM API round trips.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of PDAM API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Interaction metrics ───────────────────────────────────────────────────────

// NoticesTotal counts notices returned to dialogs.
// Labels:
//   - resource: "customer", "service", "auth"
//   - level: "success", "warning", "error"
var NoticesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_total",
		Help:      "Total number of dialog notices, by resource and level.",
	},
	[]string{"resource", "level"},
)

// EmptyListFallbacksTotal counts list views rendered empty because the fetch
// failed.
var EmptyListFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_list_fallbacks_total",
		Help:      "List views rendered empty after a failed fetch.",
	},
	[]string{"resource"},
)

// ReferenceCacheTotal counts reference cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReferenceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_cache_total",
		Help:      "Reference cache lookups, labelled by result (hit/miss).",
	},
	[]string{"kind", "result"},
)

// Recorder implements ports.Observer with the counters above.
type Recorder struct{}

var _ ports.Observer = Recorder{}

func (Recorder) EmptyListFallback(resource string) {
	EmptyListFallbacksTotal.WithLabelValues(resource).Inc()
}

func (Recorder) ReferenceLookup(kind ports.ReferenceKind, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ReferenceCacheTotal.WithLabelValues(string(kind), result).Inc()
}
