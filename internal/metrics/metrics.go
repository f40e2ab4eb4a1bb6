package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stagedoor",
			Name:      "availability_check_total",
			Help:      "Count of availability gate checks by result.",
		},
		[]string{"result"},
	)

	snapshotRebuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stagedoor",
			Name:      "snapshot_rebuild_total",
			Help:      "Count of schedule snapshot rebuilds by outcome.",
		},
		[]string{"outcome"},
	)

	staffConflictChecks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stagedoor",
			Name:      "staff_conflict_check_total",
			Help:      "Count of advisory staff conflict checks.",
		},
	)

	fetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stagedoor",
			Name:      "backend_fetch_errors_total",
			Help:      "Count of data store fetch failures by source.",
		},
		[]string{"source"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stagedoor",
			Name:      "http_requests_total",
			Help:      "Count of API requests by endpoint.",
		},
		[]string{"endpoint"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityChecks, snapshotRebuilds, staffConflictChecks, fetchErrors, httpRequests)
	})
}

func IncAvailabilityCheck(result string) {
	availabilityChecks.WithLabelValues(result).Inc()
}

func IncSnapshotRebuild(outcome string) {
	snapshotRebuilds.WithLabelValues(outcome).Inc()
}

func IncStaffConflictCheck() {
	staffConflictChecks.Inc()
}

func IncFetchError(source string) {
	fetchErrors.WithLabelValues(source).Inc()
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}
