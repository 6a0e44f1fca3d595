package quiz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ingestTotal counts sampled candidates by what happened to them.
	// Labels: result (saved, skipped, failed, store_unavailable)
	ingestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "quiz",
		Name:      "ingest_candidates_total",
		Help:      "Sampled candidates by ingest result",
	}, []string{"result"})

	searchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "quiz",
		Name:      "searches_total",
		Help:      "Non-empty search queries served",
	})

	searchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "quiz",
		Name:      "search_cache_hits_total",
		Help:      "Searches answered from the archive match cache",
	})

	// addWordTotal counts manual additions.
	// Labels: result (accepted or a reject reason)
	addWordTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizpool",
		Subsystem: "quiz",
		Name:      "add_word_total",
		Help:      "Manual word additions by result",
	}, []string{"result"})
)
