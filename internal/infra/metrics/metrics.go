package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "saleorbridge"

var (
	// HTTP metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// Tax webhook outcomes, labelled by the mapped result
	taxCalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_calculations_total",
			Help:      "Tax calculation webhook outcomes",
		},
		[]string{"channel", "outcome"},
	)

	taxProviderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tax_provider_duration_seconds",
			Help:      "AvaTax call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// Search indexing
	searchDocumentsIndexed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_documents_indexed_total",
			Help:      "Documents written to the search collection",
		},
		[]string{"operation"},
	)

	searchImportPages = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_import_pages",
			Help:      "Pages processed by the running catalog import",
		},
		[]string{"tenant"},
	)

	searchImportErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_import_errors_total",
			Help:      "Documents rejected during catalog import",
		},
		[]string{"tenant"},
	)

	webhooksDisabledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_disabled_total",
			Help:      "Platform webhooks disabled because the search backend was unreachable",
		},
		[]string{"tenant"},
	)

	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Operational email notifications",
		},
		[]string{"kind", "status"},
	)

	registry *prometheus.Registry
)

// Init initializes the metrics registry and returns the handler.
// If goMetrics is true, Go runtime metrics are included.
func Init(goMetrics bool) http.Handler {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		taxCalculationsTotal,
		taxProviderDuration,
		searchDocumentsIndexed,
		searchImportPages,
		searchImportErrors,
		webhooksDisabledTotal,
		notificationsSent,
	)

	if goMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	})
}

// recordHTTPRequest records an HTTP request metric.
func recordHTTPRequest(method, path, statusCode string) {
	httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
}

// recordHTTPDuration records an HTTP request duration metric.
func recordHTTPDuration(method, path, statusCode string, duration float64) {
	httpRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
}

// RecordTaxCalculation records the mapped outcome of a tax webhook.
func RecordTaxCalculation(channel, outcome string) {
	taxCalculationsTotal.WithLabelValues(channel, outcome).Inc()
}

// RecordTaxProviderCall records one AvaTax round trip.
func RecordTaxProviderCall(success bool, duration time.Duration) {
	status := "failure"
	if success {
		status = "success"
	}
	taxProviderDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordDocumentIndexed counts a single-document index operation.
func RecordDocumentIndexed(operation string) {
	searchDocumentsIndexed.WithLabelValues(operation).Inc()
}

// RecordDocumentsIndexed counts a batch of indexed documents.
func RecordDocumentsIndexed(operation string, n int) {
	searchDocumentsIndexed.WithLabelValues(operation).Add(float64(n))
}

// SetImportProgress publishes the page counter of a running import.
func SetImportProgress(tenant string, pages float64) {
	searchImportPages.WithLabelValues(tenant).Set(pages)
}

// RecordImportErrors counts rejected documents during an import.
func RecordImportErrors(tenant string, n int) {
	searchImportErrors.WithLabelValues(tenant).Add(float64(n))
}

// RecordWebhooksDisabled counts a webhook-disable event for a tenant.
func RecordWebhooksDisabled(tenant string) {
	webhooksDisabledTotal.WithLabelValues(tenant).Inc()
}

// RecordNotification records an email notification attempt.
func RecordNotification(kind string, success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	notificationsSent.WithLabelValues(kind, status).Inc()
}
