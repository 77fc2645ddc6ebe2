package engine

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pacai/agent"
	"pacai/game"
	"pacai/searcher"

	"github.com/stretchr/testify/require"
)

func TestRemoteAgent(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("finding a move through the agent server", func(t *testing.T) {
		planner := searcher.NewPlanner(game.NewPhysics(rules), searcher.WithSeed(1))
		server := httptest.NewServer(agent.NewServer(planner, 30, searcher.Max).Handler())
		defer server.Close()

		remote := NewRemoteAgent(server.URL)
		move, d, err := remote.FindMove(game.NewState(game.ClassicLevel(), rules))

		require.NoError(t, err)
		require.True(t, move.Valid())
		require.Equal(t, move, d.Move)
		require.Equal(t, 30, d.Expanded)
		require.Equal(t, int64(30), planner.Totals().Expanded)
	})

	t.Run("overriding the budget", func(t *testing.T) {
		planner := searcher.NewPlanner(game.NewPhysics(rules), searcher.WithSeed(1))
		server := httptest.NewServer(agent.NewServer(planner, 30, searcher.Max).Handler())
		defer server.Close()

		budget := 5
		remote := NewRemoteAgent(server.URL)
		remote.Budget = &budget
		remote.Propagation = "avg"
		_, d, err := remote.FindMove(game.NewState(game.ClassicLevel(), rules))

		require.NoError(t, err)
		require.Equal(t, 5, d.Expanded)
	})

	t.Run("reporting server errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, _, err := NewRemoteAgent(server.URL).FindMove(game.State{})

		require.ErrorContains(t, err, "status 500")
	})

	t.Run("playing a game remotely", func(t *testing.T) {
		planner := searcher.NewPlanner(game.NewPhysics(rules), searcher.WithSeed(2))
		server := httptest.NewServer(agent.NewServer(planner, 20, searcher.Average).Handler())
		defer server.Close()

		e := NewLocalEngine(game.ClassicLevel(), rules, NewRemoteAgent(server.URL), WithMaxTicks(10))
		gm, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 10, gm.Ticks)
	})
}
