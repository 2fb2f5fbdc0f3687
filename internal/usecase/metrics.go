package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battleship_sessions_created_total",
		Help: "Sessions started",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "battleship_sessions_active",
		Help: "Sessions currently held in the store",
	})

	observations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "battleship_observations_total",
		Help: "Cell observations recorded by kind",
	}, []string{"kind"})

	recomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "battleship_recompute_duration_seconds",
		Help:    "Time spent rebuilding placement maps",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})
)
