package engine

import "pacai/experiments/metrics"

type Engine interface {
	// Run plays a game till game over or a max number of ticks is reached
	Run() (gameMetric metrics.GameMetric, decisionMetrics []metrics.DecisionMetric, err error)
}
