package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textilerp_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "textilerp_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	auditWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textilerp_audit_write_failures_total",
		Help: "Count of audit entries lost to audit-store write failures",
	})

	erpDivergences = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textilerp_erp_divergence_total",
		Help: "Count of link/unlink operations that left local and ERP state diverged",
	}, []string{"operation"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveAuditWriteFailure counts one lost audit entry.
func ObserveAuditWriteFailure() {
	auditWriteFailures.Inc()
}

// ObserveERPDivergence counts one local/remote divergence needing manual reconciliation.
func ObserveERPDivergence(operation string) {
	erpDivergences.WithLabelValues(operation).Inc()
}
