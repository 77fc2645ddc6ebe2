package experiments

import (
	"fmt"

	"pacai/agent"
	"pacai/engine"
	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Budgets swept by the budget experiment
var Budgets = []int{50, 100, 300, 1000}

// Setup describes an experiment: every agent config plays Games games on the
// same level.
type Setup struct {
	Name     string
	Root     string // Results directory
	Configs  []metrics.AgentConfig
	Games    int
	MaxTicks int
	Seed     uint64 // Seeds the per-game planner seeds
	Level    *game.Level
	Rules    game.Rules
	Reward   searcher.RewardConfig
}

// Result holds everything an experiment recorded.
type Result struct {
	Dir        string
	Games      []metrics.GameRecord
	Decisions  []metrics.DecisionRecord
	Throughput []metrics.ThroughputRecord
}

// BudgetConfigs pairs every budget with every propagation mode.
func BudgetConfigs(budgets []int, propagations []searcher.Propagation) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for _, propagation := range propagations {
		for _, budget := range budgets {
			configs = append(configs, metrics.AgentConfig{
				ID:          len(configs) + 1,
				Budget:      budget,
				Propagation: propagation,
			})
		}
	}
	return configs
}

// Run plays every game of the experiment and stores the records as CSV files
// in a fresh directory under setup.Root.
func Run(setup Setup) (Result, error) {
	rng := rand.New(rand.NewSource(setup.Seed))
	result := Result{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for ci, config := range setup.Configs {
		log.Info().Msgf("starting config %d of %d agent=%+v...", ci+1, len(setup.Configs), config)

		throughput := metrics.ThroughputRecord{Agent: config.ID}
		for i := 0; i < setup.Games; i++ {
			seed := rng.Uint64()
			planner := searcher.NewPlanner(game.NewPhysics(setup.Rules),
				searcher.WithSeed(seed), searcher.WithRewardConfig(setup.Reward))
			e := engine.NewLocalEngine(setup.Level, setup.Rules,
				agent.NewPlannerAgent(planner, config.Budget, config.Propagation),
				engine.WithMaxTicks(setup.MaxTicks), engine.WithCollector(metrics.NewCollector()))

			gameMetric, decisionMetrics, err := e.Run()
			if err != nil {
				return result, fmt.Errorf("failed to play game %d of config %d: %w", i+1, config.ID, err)
			}

			result.Games = append(result.Games, metrics.GameRecord{
				Agent:      config.ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, dm := range decisionMetrics {
				result.Decisions = append(result.Decisions, metrics.DecisionRecord{
					Game:           gameMetric.ID,
					DecisionMetric: dm,
				})
			}
			totals := planner.Totals()
			throughput.Decisions += len(decisionMetrics)
			throughput.Expanded += totals.Expanded
			throughput.Elapsed += totals.Elapsed

			log.Info().Msgf("completed config %d game %d of %d with score %d at level %d", config.ID, i+1, setup.Games, gameMetric.Score, gameMetric.Level)
		}
		result.Throughput = append(result.Throughput, throughput)
		log.Info().Msgf("completed config %d of %d at %.0f expanded/sec", ci+1, len(setup.Configs), throughput.ExpandedPerSecond())
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	dir, err := store(setup, result)
	result.Dir = dir
	return result, err
}

func store(setup Setup, result Result) (string, error) {
	writer, err := metrics.NewWriter(setup.Root, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(setup.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteDecisionRecords(result.Decisions); err != nil {
		return "", err
	}
	log.Info().Msg("stored decision records")

	if err := writer.WriteThroughputRecords(result.Throughput); err != nil {
		return "", err
	}
	log.Info().Msg("stored throughput records")
	return writer.Dir(), nil
}
