package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"pacai/agent"
	"pacai/engine"
	"pacai/experiments"
	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/meta"
	"pacai/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mode := flag.String("mode", "play", "One of play, serve or experiment")
	budget := flag.Int("budget", cfg.Budget, "Node expansions per decision")
	propagation := flag.String("propagation", cfg.Propagation.String(), "Score propagation, max or avg")
	seed := flag.Uint64("seed", cfg.Seed, "Planner seed, 0 for a random one")
	maxTicks := flag.Int("max-ticks", cfg.MaxTicks, "Tick limit of a game")
	levelPath := flag.String("level", cfg.Level, "Level file, empty for the built-in maze")
	addr := flag.String("addr", cfg.Addr, "Listen address of the agent server")
	agentURL := flag.String("agent", cfg.AgentURL, "URL of a remote agent server, empty to plan locally")
	results := flag.String("results", cfg.Results, "Directory for experiment results")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	prop, err := searcher.ParsePropagation(*propagation)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid propagation")
	}
	if *budget < 0 {
		log.Fatal().Int("budget", *budget).Msg("budget must not be negative")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	maze := game.ClassicLevel()
	if *levelPath != "" {
		maze, err = game.LoadLevel(*levelPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load level")
		}
	}
	rules := game.NewStandardRules()
	newPlanner := func() *searcher.Planner {
		return searcher.NewPlanner(game.NewPhysics(rules),
			searcher.WithSeed(*seed), searcher.WithRewardConfig(cfg.Reward))
	}

	switch *mode {
	case "play":
		var a agent.Agent
		if *agentURL != "" {
			remote := engine.NewRemoteAgent(*agentURL)
			remote.Budget = budget
			remote.Propagation = prop.String()
			a = remote
		} else {
			a = agent.NewPlannerAgent(newPlanner(), *budget, prop)
		}
		e := engine.NewLocalEngine(maze, rules, a, engine.WithMaxTicks(*maxTicks), engine.WithCollector(metrics.NewCollector()))
		gm, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		log.Info().Str("game", gm.ID.String()).Int("score", gm.Score).Int("level", gm.Level).Int("ticks", gm.Ticks).Dur("duration", gm.Duration).Msg("game finished")

	case "serve":
		server := agent.NewServer(newPlanner(), *budget, prop)
		if err := server.ListenAndServe(*addr); err != nil {
			log.Fatal().Err(err).Msg("agent server failed")
		}

	case "experiment":
		setup := experiments.Setup{
			Name:     "budget",
			Root:     *results,
			Configs:  experiments.BudgetConfigs(experiments.Budgets, []searcher.Propagation{searcher.Max, searcher.Average}),
			Games:    cfg.Games,
			MaxTicks: *maxTicks,
			Seed:     rand.New(rand.NewSource(*seed)).Uint64(),
			Level:    maze,
			Rules:    rules,
			Reward:   cfg.Reward,
		}
		result, err := experiments.Run(setup)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Str("dir", result.Dir).Int("games", len(result.Games)).Msg("experiment stored")

	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
