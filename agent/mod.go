package agent

import (
	"pacai/game"
	"pacai/searcher"
)

type Agent interface {
	// FindMove returns the move to play in state and the statistics of the
	// search that chose it
	FindMove(state game.State) (game.Move, searcher.Decision, error)
}

type plannerAgent struct {
	planner     *searcher.Planner
	budget      int
	propagation searcher.Propagation
}

// NewPlannerAgent returns an agent searching in-process with a fixed budget.
func NewPlannerAgent(planner *searcher.Planner, budget int, propagation searcher.Propagation) Agent {
	return plannerAgent{planner: planner, budget: budget, propagation: propagation}
}

func (a plannerAgent) FindMove(state game.State) (game.Move, searcher.Decision, error) {
	d := a.planner.Search(state, a.budget, a.propagation)
	return d.Move, d, nil
}
