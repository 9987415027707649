package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application metrics, registered on the default registry and exposed
// via /metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pickem_http_requests_total",
		Help: "HTTP requests processed, labeled by method, route and status code.",
	}, []string{"method", "route", "code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pickem_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	PicksSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_picks_submitted_total",
		Help: "Game selections accepted into the pick store.",
	})

	TiebreakerGuesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_tiebreaker_guesses_total",
		Help: "Tiebreaker guesses accepted into the pick store.",
	})

	PickRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_pick_rejections_total",
		Help: "Pick submissions rejected at validation.",
	})

	ResultsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_game_results_recorded_total",
		Help: "Final game results ingested from the score feed.",
	})

	ScoringRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_scoring_runs_total",
		Help: "Weekly scoring computations performed.",
	})

	WeeksResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_weeks_resolved_total",
		Help: "Weekly winner resolutions performed.",
	})

	SeasonRecalculations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_season_recalculations_total",
		Help: "Full season standings recomputations.",
	})
)
