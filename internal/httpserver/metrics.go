package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_guesses_total",
		Help: "Guesses received, by outcome (accepted or the rejection code).",
	}, []string{"outcome"})

	gamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_games_total",
		Help: "Games started and finished, by event.",
	}, []string{"event"})

	candidatesFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordle_enumerate_candidates",
		Help:    "Number of words returned by a constrained enumeration.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)
