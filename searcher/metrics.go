package searcher

import (
	"fmt"
	"strings"
	"time"

	"pacai/game"
)

// Decision is the outcome of one search: the chosen move plus the statistics
// gathered while searching.
type Decision struct {
	Move      game.Move
	Scores    [game.NumMoves]float64 // Aggregated score per root move, -Inf when never sampled
	Samples   [game.NumMoves]int     // Trajectories attributed to each root move
	Expanded  int
	Generated int
	Pruned    int // Children dropped after losing a life
	MaxDepth  int
	Elapsed   time.Duration
}

// ExpandedPerSecond is the expansion throughput of the search.
func (d Decision) ExpandedPerSecond() float64 {
	if d.Elapsed <= 0 {
		return 0
	}
	return float64(d.Expanded) / d.Elapsed.Seconds()
}

// String renders the human readable search summary.
func (d Decision) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Max Depth: %d Expanded nodes: %d  Generated nodes: %d\n", d.MaxDepth, d.Expanded, d.Generated)
	fmt.Fprintf(&b, "Expanded/Sec: %.2f\n", d.ExpandedPerSecond())
	fmt.Fprintf(&b, "Selected action: %s\n", d.Move)
	fmt.Fprintf(&b, "Score Left %f Right %f Up %f Down %f",
		d.Scores[game.Left], d.Scores[game.Right], d.Scores[game.Up], d.Scores[game.Down])
	return b.String()
}

// Totals accumulates statistics over every search run by a planner.
type Totals struct {
	Generated int64
	Expanded  int64
	MaxDepth  int
	Elapsed   time.Duration
}

func (t *Totals) add(d Decision) {
	t.Generated += int64(d.Generated)
	t.Expanded += int64(d.Expanded)
	t.MaxDepth = max(t.MaxDepth, d.MaxDepth)
	t.Elapsed += d.Elapsed
}
