package bandit

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	phaseExplore = "explore"
	phaseExploit = "exploit"
)

var (
	AllocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bandit_allocations_total",
			Help: "Count of computed arm allocations by subtype and phase.",
		},
		[]string{"subtype", "phase"},
	)
)

func init() {
	prometheus.MustRegister(AllocationsTotal)
}

func recordAllocation(subtype, phase string) {
	AllocationsTotal.WithLabelValues(subtype, phase).Inc()
}
