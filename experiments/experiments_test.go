package experiments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/searcher"

	"github.com/stretchr/testify/require"
)

func TestBudgetConfigs(t *testing.T) {
	configs := BudgetConfigs([]int{10, 20}, []searcher.Propagation{searcher.Max, searcher.Average})

	require.Equal(t, []metrics.AgentConfig{
		{ID: 1, Budget: 10, Propagation: searcher.Max},
		{ID: 2, Budget: 20, Propagation: searcher.Max},
		{ID: 3, Budget: 10, Propagation: searcher.Average},
		{ID: 4, Budget: 20, Propagation: searcher.Average},
	}, configs)
}

func TestRun(t *testing.T) {
	level, err := game.ParseLevel(strings.NewReader("#......#\n#.####.#\n#P....G#"))
	require.NoError(t, err)

	setup := Setup{
		Name:     "smoke",
		Root:     t.TempDir(),
		Configs:  BudgetConfigs([]int{5, 20}, []searcher.Propagation{searcher.Max, searcher.Average}),
		Games:    2,
		MaxTicks: 15,
		Seed:     3,
		Level:    level,
		Rules:    game.NewStandardRules(),
		Reward:   searcher.DefaultRewardConfig(),
	}

	result, err := Run(setup)

	require.NoError(t, err)
	require.Len(t, result.Games, 8, "Every config should play every game")
	require.Len(t, result.Throughput, 4)
	ticks := 0
	for _, g := range result.Games {
		require.LessOrEqual(t, g.Ticks, 15)
		ticks += g.Ticks
	}
	require.Len(t, result.Decisions, ticks, "Every tick should be one decision")

	for _, name := range []string{"agent_configs.csv", "game_records.csv", "decision_records.csv", "throughput_records.csv"} {
		_, err := os.Stat(filepath.Join(result.Dir, name))
		require.NoError(t, err, "Missing %s", name)
	}

	again, err := Run(setup)
	require.NoError(t, err)
	for i := range result.Games {
		require.Equal(t, result.Games[i].Seed, again.Games[i].Seed, "Seeds should be reproducible")
		require.Equal(t, result.Games[i].Score, again.Games[i].Score, "Games should be reproducible")
	}
}
