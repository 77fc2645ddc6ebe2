package metrics

import (
	"time"

	"pacai/game"
	"pacai/searcher"

	"github.com/google/uuid"
)

// AgentConfig describes how an agent searches.
type AgentConfig struct {
	ID          int
	Budget      int
	Propagation searcher.Propagation
}

// DecisionMetric is one tick of a game: the world before the move and the
// statistics of the search that chose it.
type DecisionMetric struct {
	Tick  int
	Level int
	Score int
	Lives int
	searcher.Decision
}

type GameMetric struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Ticks     int
	Score     int
	Level     int // Level reached
	Lives     int
	GameOver  bool
}

type Collector interface {
	Start()
	AddDecision(tick int, state game.State, d searcher.Decision)
	Complete(final game.State) (GameMetric, []DecisionMetric)
}

type collector struct {
	id        uuid.UUID
	startTime time.Time
	decisions []DecisionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.id = uuid.New()
	c.startTime = time.Now()
	c.decisions = nil
}

func (c *collector) AddDecision(tick int, state game.State, d searcher.Decision) {
	c.decisions = append(c.decisions, DecisionMetric{
		Tick:     tick,
		Level:    state.LevelNumber,
		Score:    state.Score,
		Lives:    state.Lives,
		Decision: d,
	})
}

func (c *collector) Complete(final game.State) (GameMetric, []DecisionMetric) {
	end := time.Now()
	return GameMetric{
		ID:        c.id,
		StartTime: c.startTime,
		EndTime:   end,
		Duration:  end.Sub(c.startTime),
		Ticks:     len(c.decisions),
		Score:     final.Score,
		Level:     final.LevelNumber,
		Lives:     final.Lives,
		GameOver:  final.GameOver(),
	}, c.decisions
}

// dummyCollector only reports the outcome of the game.
type dummyCollector struct {
	id    uuid.UUID
	ticks int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start() {
	c.id = uuid.New()
	c.ticks = 0
}

func (c *dummyCollector) AddDecision(tick int, state game.State, d searcher.Decision) {
	c.ticks++
}

func (c *dummyCollector) Complete(final game.State) (GameMetric, []DecisionMetric) {
	return GameMetric{
		ID:       c.id,
		Ticks:    c.ticks,
		Score:    final.Score,
		Level:    final.LevelNumber,
		Lives:    final.Lives,
		GameOver: final.GameOver(),
	}, nil
}
