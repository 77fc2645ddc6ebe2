package searcher

import (
	"fmt"
	"math"
	"sync"
	"time"

	"pacai/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(p *Planner)

// Planner chooses moves by a budgeted, randomized forward search. Apart from
// the cumulative totals, the only thing carried from one search to the next
// is the previously chosen move, which wins score ties.
//
// A Planner is safe for concurrent use; searches are serialized.
type Planner struct {
	mu          sync.Mutex
	transition  game.Transition
	reward      RewardConfig
	rng         *rand.Rand
	newFrontier func() Frontier
	prev        game.Move
	totals      Totals
}

func WithSeed(seed uint64) Option {
	return func(p *Planner) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) {
		if rng != nil {
			p.rng = rng
		}
	}
}

func WithRewardConfig(config RewardConfig) Option {
	return func(p *Planner) {
		p.reward = config
	}
}

func WithFrontier(newFrontier func() Frontier) Option {
	return func(p *Planner) {
		if newFrontier != nil {
			p.newFrontier = newFrontier
		}
	}
}

// WithInitialMove sets the move treated as previously chosen by the first
// search.
func WithInitialMove(move game.Move) Option {
	return func(p *Planner) {
		if move.Valid() {
			p.prev = move
		}
	}
}

func NewPlanner(transition game.Transition, options ...Option) *Planner {
	if transition == nil {
		panic("planner needs a transition function")
	}
	p := &Planner{ // Default values
		transition:  transition,
		reward:      DefaultRewardConfig(),
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		newFrontier: NewFrontier,
		prev:        game.Left,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Decide searches from state, expanding at most budget nodes, and returns the
// chosen move with a human readable summary of the search.
func (p *Planner) Decide(state game.State, budget int, propagation Propagation) (game.Move, string) {
	d := p.Search(state, budget, propagation)
	return d.Move, d.String()
}

// Search is Decide returning the full search statistics.
func (p *Planner) Search(state game.State, budget int, propagation Propagation) Decision {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	e := p.grow(state, budget, propagation)
	e.release()

	move := selectMove(e.scores, p.prev, p.rng)
	d := Decision{
		Move:      move,
		Scores:    e.scores,
		Samples:   e.samples,
		Expanded:  len(e.expanded),
		Generated: e.generated,
		Pruned:    e.pruned,
		MaxDepth:  e.maxDepth,
		Elapsed:   time.Since(start),
	}

	p.totals.add(d)
	p.prev = move

	log.Debug().
		Stringer("move", move).
		Stringer("propagation", propagation).
		Int("budget", budget).
		Int("expanded", d.Expanded).
		Int("generated", d.Generated).
		Int("max_depth", d.MaxDepth).
		Dur("elapsed", d.Elapsed).
		Msg("search complete")
	return d
}

// Totals returns the statistics accumulated over every search so far.
func (p *Planner) Totals() Totals {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals
}

// Previous returns the move chosen by the last search.
func (p *Planner) Previous() game.Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prev
}

// episode is the state of one search: the tree, the frontier, the registry
// of expanded nodes and the per root move statistics.
type episode struct {
	tree      *tree
	frontier  Frontier
	expanded  []int
	scores    [game.NumMoves]float64
	samples   [game.NumMoves]int
	generated int
	pruned    int
	maxDepth  int
}

// grow runs the expansion loop and returns the episode before it is
// released.
func (p *Planner) grow(state game.State, budget int, propagation Propagation) *episode {
	e := &episode{
		tree:     newTree(state, p.prev),
		frontier: p.newFrontier(),
	}
	for a := range e.scores {
		e.scores[a] = math.Inf(-1)
	}
	e.frontier.Push(0, e.tree.get(0).priority)

	for len(e.expanded) < budget && e.frontier.Len() > 0 {
		id := e.frontier.Pop()
		e.expanded = append(e.expanded, id)
		// Copy out: adding children may move the arena
		parent := *e.tree.get(id)

		for _, action := range shuffledMoves(p.rng) {
			child, legal := applyAction(p.transition, p.reward, &parent, id, action)
			if !legal {
				continue
			}
			e.generated++
			e.maxDepth = max(e.maxDepth, child.depth)
			e.backup(&child, propagation)

			// Paths are not explored past a lost life
			if child.state.Lives == parent.state.Lives {
				e.frontier.Push(e.tree.add(child), child.priority)
			} else {
				e.pruned++
			}
		}
	}
	return e
}

// backup attributes the return of n to the root move that began its path.
func (e *episode) backup(n *node, propagation Propagation) {
	a := n.initialMove
	e.samples[a]++
	count := e.samples[a]

	switch {
	case count == 1:
		e.scores[a] = n.accReward
	case propagation == Max:
		e.scores[a] = max(e.scores[a], n.accReward)
	case propagation == Average:
		e.scores[a] = (e.scores[a]*float64(count-1) + n.accReward) / float64(count)
	default:
		panic(fmt.Sprintf("unknown propagation %v", propagation))
	}
}

// release drops every node of the search in one go.
func (e *episode) release() {
	e.frontier.Clear()
	e.tree.release()
}
