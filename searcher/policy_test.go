package searcher

import (
	"math"
	"testing"

	"pacai/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSelectMove(t *testing.T) {
	inf := math.Inf(-1)

	t.Run("picking the strictly best move", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		got := selectMove([game.NumMoves]float64{1, 2, 9, 3}, game.Left, rng)

		require.Equal(t, game.Up, got)
	})

	t.Run("repeating the previous move on a full tie", func(t *testing.T) {
		for seed := uint64(0); seed < 200; seed++ {
			rng := rand.New(rand.NewSource(seed))
			got := selectMove([game.NumMoves]float64{5, 5, 5, 5}, game.Right, rng)

			require.Equal(t, game.Right, got, "Previous move should always win a tie it is part of")
		}
	})

	t.Run("breaking ties at random when the previous move is not tied", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		counts := map[game.Move]int{}
		for i := 0; i < 1000; i++ {
			counts[selectMove([game.NumMoves]float64{3, 7, 7, 2}, game.Left, rng)]++
		}

		require.Positive(t, counts[game.Right], "Right should be chosen sometimes")
		require.Positive(t, counts[game.Up], "Up should be chosen sometimes")
		require.Zero(t, counts[game.Left], "Left is not among the best")
		require.Zero(t, counts[game.Down], "Down is not among the best")
	})

	t.Run("never choosing an unsampled move over a sampled one", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		got := selectMove([game.NumMoves]float64{inf, -40, inf, inf}, game.Left, rng)

		require.Equal(t, game.Right, got)
	})

	t.Run("returning a move when nothing was sampled", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		got := selectMove([game.NumMoves]float64{inf, inf, inf, inf}, game.Down, rng)

		require.Equal(t, game.Down, got)
	})
}

func TestShuffledMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	firsts := map[game.Move]int{}
	for i := 0; i < 400; i++ {
		order := shuffledMoves(rng)
		require.ElementsMatch(t, game.Moves[:], order[:], "Order should be a permutation of the moves")
		firsts[order[0]]++
	}

	for _, m := range game.Moves {
		require.Positive(t, firsts[m], "Every move should sometimes come first")
	}
}
