package services

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crush_hub_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"route"},
	)

	errorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crush_hub_request_errors_total",
			Help: "HTTP requests answered with a status >= 400",
		},
		[]string{"route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crush_hub_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	downloadRedirects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crush_hub_download_redirects_total",
			Help: "Binary download redirects issued",
		},
		[]string{"platform", "arch"},
	)

	downloadRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crush_hub_download_rejections_total",
			Help: "Binary download requests rejected by validation",
		},
		[]string{"kind"},
	)
)

// Local totals for the health endpoint; reading them back from the
// prometheus collectors is not supported by the client API.
var (
	totalRequests     atomic.Int64
	totalErrors       atomic.Int64
	totalRedirections atomic.Int64
)

func init() {
	prometheus.MustRegister(requestCount, errorCount, requestDuration, downloadRedirects, downloadRejections)
}

func IncrementRequestCount(route string) {
	requestCount.WithLabelValues(route).Inc()
	totalRequests.Add(1)
}

func IncrementErrorCount(route string) {
	errorCount.WithLabelValues(route).Inc()
	totalErrors.Add(1)
}

func RecordRequestDuration(route string, seconds float64) {
	requestDuration.WithLabelValues(route).Observe(seconds)
}

func RecordDownloadRedirect(platform, arch string) {
	downloadRedirects.WithLabelValues(platform, arch).Inc()
	totalRedirections.Add(1)
}

func RecordDownloadRejection(kind string) {
	downloadRejections.WithLabelValues(kind).Inc()
}

func GetTotalRequestCount() int64 {
	return totalRequests.Load()
}

func GetTotalErrorCount() int64 {
	return totalErrors.Load()
}

func GetTotalRedirectCount() int64 {
	return totalRedirections.Load()
}
