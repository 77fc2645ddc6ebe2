package searcher

import (
	"math"

	"pacai/game"
)

// heuristic shapes the reward of the transition from parent to child, where
// child sits at the given depth below the root:
//
//	h = i - l - g
//
// i: invincibility was just gained, l: a life was lost close to the root,
// g: the game is over.
func (c RewardConfig) heuristic(parent, child *game.State, depth int) float64 {
	h := 0.0
	if parent.Lives > child.Lives && depth < c.LifeLossDepth {
		h -= c.LifeLossPenalty
	}
	if !parent.Invincible && child.Invincible {
		h += c.InvincibilityReward
	}
	if child.Lives == game.GameOverLives {
		h -= c.GameOverPenalty
	}
	return h
}

// reward is the single-step reward of reaching child from parent, already
// discounted for its depth. Summing it along a path gives the discounted
// return of that path.
func (c RewardConfig) reward(parent, child *game.State, depth int) float64 {
	r := c.heuristic(parent, child, depth) + float64(child.Score-parent.Score)
	return r * math.Pow(c.Discount, float64(depth))
}
