package corridor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corridor_client",
			Name:      "operations_total",
			Help:      "Operations executed by the flush path.",
		},
		[]string{"kind"},
	)

	operationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corridor_client",
			Name:      "operation_failures_total",
			Help:      "Operations whose final attempt returned an error.",
		},
		[]string{"kind"},
	)
)
