package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AllocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bandit_allocation_latency_seconds",
		Help:    "Latency of the bandit allocation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	AllocationTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bandit_allocation_requests_total",
		Help: "Total allocation requests served",
	})
)

func Init() {
	prometheus.MustRegister(AllocationDuration, AllocationTotal)
}
