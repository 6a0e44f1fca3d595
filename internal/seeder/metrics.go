package seeder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// passTotal counts archive passes.
	// Labels: kind (ingest, search), outcome (complete, timeout, missing, failed)
	passTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "archive",
		Name:      "passes_total",
		Help:      "Archive passes by kind and outcome",
	}, []string{"kind", "outcome"})

	// passDuration measures wall time of one archive pass.
	passDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quizpool",
		Subsystem: "archive",
		Name:      "pass_duration_seconds",
		Help:      "Archive pass duration in seconds",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"kind"})

	// entriesTotal counts archive entries by result.
	// Labels: result (parsed, open_failed, parse_failed)
	entriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "archive",
		Name:      "entries_total",
		Help:      "Archive JSON entries by result",
	}, []string{"result"})

	// candidatesTotal counts candidates produced by passes.
	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "archive",
		Name:      "candidates_total",
		Help:      "Candidates or matches produced by archive passes",
	}, []string{"kind"})
)

func recordPass(kind string, r PassResult) {
	passTotal.WithLabelValues(kind, r.Outcome()).Inc()
	passDuration.WithLabelValues(kind).Observe(r.Duration.Seconds())
	entriesTotal.WithLabelValues("parsed").Add(float64(max(0, r.JSONEntries-r.OpenFailures-r.ParseFailures)))
	entriesTotal.WithLabelValues("open_failed").Add(float64(r.OpenFailures))
	entriesTotal.WithLabelValues("parse_failed").Add(float64(r.ParseFailures))
	candidatesTotal.WithLabelValues(kind).Add(float64(r.Candidates))
}
