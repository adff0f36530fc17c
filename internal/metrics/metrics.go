// Package metrics exposes prometheus instrumentation for the solver
// endpoints.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SolvesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "npuzzle_solves_total",
		Help: "Completed optimal solves.",
	})

	SolveFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "npuzzle_solve_failures_total",
		Help: "Failed solve requests by reason.",
	}, []string{"reason"})

	SolutionLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "npuzzle_solution_length",
		Help:    "Optimal path length of completed solves.",
		Buckets: prometheus.LinearBuckets(0, 4, 9),
	})

	NodesExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "npuzzle_nodes_expanded",
		Help:    "States expanded per completed solve.",
		Buckets: prometheus.ExponentialBuckets(8, 4, 9),
	})

	ScramblesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "npuzzle_scrambles_total",
		Help: "Scrambled boards handed out.",
	})
)
