package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	apiRequestsTotal    *prometheus.CounterVec
	apiLatencySeconds   *prometheus.HistogramVec
	apiErrorsTotal      *prometheus.CounterVec
	storeCommitsTotal   prometheus.Counter
	storeCommitFailures prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the API and
// the domain store.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		storeCommitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_commits_total",
			Help: "Total number of snapshot commits written by the domain store.",
		})

		storeCommitFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_commit_failures_total",
			Help: "Total number of snapshot commits that failed to persist.",
		})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal,
			storeCommitsTotal, storeCommitFailures)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// StoreCommits exposes the counter for successful snapshot commits.
func StoreCommits() prometheus.Counter {
	RegisterMetrics()
	return storeCommitsTotal
}

// StoreCommitFailures exposes the counter for failed snapshot commits.
func StoreCommitFailures() prometheus.Counter {
	RegisterMetrics()
	return storeCommitFailures
}
