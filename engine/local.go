package engine

import (
	"fmt"

	"pacai/agent"
	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine runs the game loop in-process: every tick it asks the agent
// for a move and applies it with the maze physics.
type LocalEngine struct {
	State     game.State
	level     *game.Level
	physics   *game.Physics
	agent     agent.Agent
	maxTicks  int
	collector metrics.Collector
}

func WithMaxTicks(ticks int) Option {
	return func(e *LocalEngine) {
		if ticks > 0 {
			e.maxTicks = ticks
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func NewLocalEngine(level *game.Level, rules game.Rules, a agent.Agent, options ...Option) *LocalEngine {
	if a == nil {
		panic("engine needs an agent")
	}
	e := &LocalEngine{
		State:     game.NewState(level, rules),
		level:     level,
		physics:   game.NewPhysics(rules),
		agent:     a,
		maxTicks:  meta.MAX_TICKS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over or the tick limit is hit.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.DecisionMetric, error) {
	e.collector.Start()
	log.Info().Int("level", e.State.LevelNumber).Int("lives", e.State.Lives).Msg("game started")

	tick := 0
	for ; !e.State.GameOver() && tick < e.maxTicks; tick++ {
		if err := e.Step(tick); err != nil {
			gm, dm := e.collector.Complete(e.State)
			return gm, dm, err
		}
	}

	gm, dm := e.collector.Complete(e.State)
	if e.State.GameOver() {
		log.Info().Int("score", e.State.Score).Int("level", e.State.LevelNumber).Int("ticks", tick).Msg("game over")
	} else {
		log.Info().Int("score", e.State.Score).Int("level", e.State.LevelNumber).Msgf("stopped after %d ticks", tick)
	}
	return gm, dm, nil
}

// Step plays a single tick. An illegal move leaves pacman in place while the
// ghosts keep moving.
func (e *LocalEngine) Step(tick int) error {
	move, d, err := e.agent.FindMove(e.State)
	if err != nil {
		return fmt.Errorf("failed to find move at tick %d: %w", tick, err)
	}
	e.collector.AddDecision(tick, e.State, d)

	lives := e.State.Lives
	if !e.physics.Apply(&e.State, move) {
		log.Debug().Int("tick", tick).Stringer("move", move).Msg("illegal move, waiting")
		e.physics.Wait(&e.State)
	}
	if e.State.Lives < lives {
		log.Info().Int("tick", tick).Int("lives", e.State.Lives).Msg("life lost")
	}

	if e.State.Cleared() && !e.State.GameOver() {
		e.State.LevelNumber++
		e.State.Enter(e.level)
		log.Info().Int("tick", tick).Int("level", e.State.LevelNumber).Int("score", e.State.Score).Msg("level cleared")
	}
	return nil
}
