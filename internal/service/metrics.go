package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fast_note_keep",
		Name:      "note_operations_total",
		Help:      "Note store operations by operation and result.",
	}, []string{"op", "result"})

	notePersistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fast_note_keep",
		Name:      "note_persist_duration_seconds",
		Help:      "Time spent writing the note lists to the key-value store.",
		Buckets:   prometheus.DefBuckets,
	})

	noteCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fast_note_keep",
		Name:      "notes",
		Help:      "Number of notes currently held by the store.",
	})
)

func observeOp(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	noteOperations.WithLabelValues(op, result).Inc()
}
