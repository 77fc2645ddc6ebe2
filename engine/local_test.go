package engine

import (
	"errors"
	"strings"
	"testing"

	"pacai/agent"
	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/meta"
	"pacai/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	move game.Move
	err  error
}

func (a scriptedAgent) FindMove(state game.State) (game.Move, searcher.Decision, error) {
	return a.move, searcher.Decision{Move: a.move}, a.err
}

func mustParse(t *testing.T, layout string) *game.Level {
	t.Helper()
	l, err := game.ParseLevel(strings.NewReader(layout))
	require.NoError(t, err)
	return l
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing until game over", func(t *testing.T) {
		e := NewLocalEngine(mustParse(t, "#P G#"), game.NewStandardRules(), scriptedAgent{move: game.Right},
			WithCollector(metrics.NewCollector()))

		gm, decisions, err := e.Run()

		require.NoError(t, err)
		require.True(t, gm.GameOver)
		require.Equal(t, 4, gm.Ticks, "Each tick should cost one of four lives")
		require.Len(t, decisions, 4)
		require.Equal(t, 3, decisions[0].Lives)
		require.Equal(t, 0, decisions[3].Lives)
	})

	t.Run("advancing to the next level", func(t *testing.T) {
		e := NewLocalEngine(mustParse(t, "#P.#"), game.NewStandardRules(), scriptedAgent{move: game.Right},
			WithMaxTicks(3))

		gm, _, err := e.Run()

		require.NoError(t, err)
		require.False(t, gm.GameOver)
		require.Equal(t, 3, gm.Ticks)
		require.Equal(t, 4, gm.Level, "Each tick should clear the level")
		require.Equal(t, 30, gm.Score)
		require.Equal(t, 1, e.State.Food, "Next level should be refilled")
	})

	t.Run("stopping at the tick limit", func(t *testing.T) {
		e := NewLocalEngine(mustParse(t, "#P..#"), game.NewStandardRules(), scriptedAgent{move: game.Up},
			WithMaxTicks(5))

		gm, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 5, gm.Ticks)
		require.Zero(t, gm.Score)
	})

	t.Run("propagating agent errors", func(t *testing.T) {
		boom := errors.New("boom")
		e := NewLocalEngine(mustParse(t, "#P..#"), game.NewStandardRules(), scriptedAgent{err: boom})

		_, _, err := e.Run()

		require.ErrorIs(t, err, boom)
	})

	t.Run("playing with the planner", func(t *testing.T) {
		rules := game.NewStandardRules()
		planner := searcher.NewPlanner(game.NewPhysics(rules), searcher.WithSeed(1))
		e := NewLocalEngine(game.ClassicLevel(), rules, agent.NewPlannerAgent(planner, 50, searcher.Max),
			WithMaxTicks(40), WithCollector(metrics.NewCollector()))

		gm, decisions, err := e.Run()

		require.NoError(t, err)
		require.Len(t, decisions, gm.Ticks)
		require.Positive(t, gm.Score, "Planner should eat some pellets")
		require.LessOrEqual(t, planner.Totals().Expanded, int64(gm.Ticks*50))
	})
}

func TestNewLocalEngine(t *testing.T) {
	e := NewLocalEngine(mustParse(t, "#P.#"), game.NewStandardRules(), scriptedAgent{})

	require.Equal(t, meta.MAX_TICKS, e.maxTicks, "Tick limit should default to the configured one")
}

func TestLocalEngineStep(t *testing.T) {
	t.Run("waiting on an illegal move", func(t *testing.T) {
		e := NewLocalEngine(mustParse(t, "#P  G#"), game.NewStandardRules(), scriptedAgent{move: game.Up})

		require.NoError(t, e.Step(0))
		require.Equal(t, game.Point{Row: 0, Col: 1}, e.State.Pacman(), "Pacman should stay put")
		require.Equal(t, game.Point{Row: 0, Col: 3}, e.State.Loc[1], "Ghost should still move")
	})
}
