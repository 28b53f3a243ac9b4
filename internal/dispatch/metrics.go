package dispatch

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corridor_dispatch",
			Name:      "jobs_submitted_total",
			Help:      "Jobs accepted onto a shard queue.",
		},
		[]string{"shard"},
	)

	overflowTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corridor_dispatch",
			Name:      "queue_overflow_total",
			Help:      "Submissions rejected because a shard queue stayed full.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "corridor_dispatch",
			Name:      "queue_depth",
			Help:      "Jobs waiting on each shard queue.",
		},
		[]string{"shard"},
	)

	runSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "corridor_dispatch",
			Name:      "job_run_seconds",
			Help:      "Wall time of a single job attempt.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)
)

func shardLabel(idx int) string { return strconv.Itoa(idx) }
