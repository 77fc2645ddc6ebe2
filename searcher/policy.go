package searcher

import (
	"pacai/game"

	"golang.org/x/exp/rand"
)

// selectMove picks the move with the highest score. Ties are broken at
// random, except that the previous move wins any tie it is part of.
//
// The tie counter is never reset when a strictly better move takes over, so
// the chance of a later tie replacing the candidate depends on how many ties
// were seen earlier in the scan.
func selectMove(scores [game.NumMoves]float64, prev game.Move, rng *rand.Rand) game.Move {
	best := game.Move(0)
	ties := 1
	for _, a := range game.Moves {
		switch {
		case scores[a] > scores[best]:
			best = a
		case scores[a] == scores[best]:
			if a == prev {
				best = a
			} else if best != prev && rng.Intn(ties) == 0 {
				best = a
			}
			ties++
		}
	}
	return best
}

// shuffledMoves returns the four moves in a uniformly random order by
// rejection sampling move indices.
func shuffledMoves(rng *rand.Rand) [game.NumMoves]game.Move {
	var order [game.NumMoves]game.Move
	var used [game.NumMoves]bool
	for i := range order {
		a := rng.Intn(game.NumMoves)
		for used[a] {
			a = rng.Intn(game.NumMoves)
		}
		used[a] = true
		order[i] = game.Move(a)
	}
	return order
}
