package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"pacai/searcher"

	"github.com/joho/godotenv"
)

// BUDGET is the default number of node expansions per decision.
const BUDGET = 300

// MAX_TICKS caps the length of a locally played game.
const MAX_TICKS = 5000

// NUM_GAMES is the number of games per experiment configuration.
const NUM_GAMES = 10

const ADDR = ":8080"

const LOG_LEVEL = "info"

// Environment variables read by Load.
const (
	EnvBudget      = "PACAI_BUDGET"
	EnvPropagation = "PACAI_PROPAGATION"
	EnvSeed        = "PACAI_SEED"
	EnvMaxTicks    = "PACAI_MAX_TICKS"
	EnvGames       = "PACAI_GAMES"
	EnvLevel       = "PACAI_LEVEL"
	EnvAddr        = "PACAI_ADDR"
	EnvAgentURL    = "PACAI_AGENT_URL"
	EnvLogLevel    = "PACAI_LOG_LEVEL"
	EnvResults     = "PACAI_RESULTS"

	EnvDiscount            = "PACAI_DISCOUNT"
	EnvLifeLossPenalty     = "PACAI_LIFE_LOSS_PENALTY"
	EnvLifeLossDepth       = "PACAI_LIFE_LOSS_DEPTH"
	EnvInvincibilityReward = "PACAI_INVINCIBILITY_REWARD"
	EnvGameOverPenalty     = "PACAI_GAME_OVER_PENALTY"
)

type Config struct {
	Budget      int
	Propagation searcher.Propagation
	Seed        uint64 // 0 picks a random seed
	MaxTicks    int
	Games       int
	Level       string // Level file, empty for the built-in maze
	Addr        string
	AgentURL    string // Remote agent, empty to plan in-process
	LogLevel    string
	Results     string // Directory for experiment results
	Reward      searcher.RewardConfig
}

func Default() Config {
	return Config{
		Budget:      BUDGET,
		Propagation: searcher.Max,
		MaxTicks:    MAX_TICKS,
		Games:       NUM_GAMES,
		Addr:        ADDR,
		LogLevel:    LOG_LEVEL,
		Results:     "results",
		Reward:      searcher.DefaultRewardConfig(),
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and builds a Config from the defaults overlaid with
// PACAI_* variables. Missing .env files are ignored. Variables already set in
// the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the defaults and the PACAI_* variables.
func FromEnv() (Config, error) {
	c := Default()
	var err error
	setInt := func(key string, dst *int) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			*dst, err = strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			*dst, err = strconv.ParseFloat(v, 64)
			if err != nil {
				err = fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setInt(EnvBudget, &c.Budget)
	setInt(EnvMaxTicks, &c.MaxTicks)
	setInt(EnvGames, &c.Games)
	setString(EnvLevel, &c.Level)
	setString(EnvAddr, &c.Addr)
	setString(EnvAgentURL, &c.AgentURL)
	setString(EnvLogLevel, &c.LogLevel)
	setString(EnvResults, &c.Results)

	setFloat(EnvDiscount, &c.Reward.Discount)
	setFloat(EnvLifeLossPenalty, &c.Reward.LifeLossPenalty)
	setInt(EnvLifeLossDepth, &c.Reward.LifeLossDepth)
	setFloat(EnvInvincibilityReward, &c.Reward.InvincibilityReward)
	setFloat(EnvGameOverPenalty, &c.Reward.GameOverPenalty)
	if err != nil {
		return Config{}, err
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
	}
	if v, ok := os.LookupEnv(EnvPropagation); ok {
		c.Propagation, err = searcher.ParsePropagation(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvPropagation, err)
		}
	}
	if c.Budget < 0 {
		return Config{}, fmt.Errorf("invalid %s: budget must not be negative", EnvBudget)
	}
	return c, nil
}
