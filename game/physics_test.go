package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, layout string) (State, *Physics) {
	t.Helper()
	rules := NewStandardRules()
	return NewState(mustParse(t, layout), rules), NewPhysics(rules)
}

func TestPhysicsApply(t *testing.T) {
	t.Run("moving into a wall is illegal", func(t *testing.T) {
		s, p := newTestState(t, "#####\n#P..#\n#####")
		before := s.Clone()

		require.False(t, p.Apply(&s, Up), "Moving into a wall should be illegal")
		require.False(t, p.Apply(&s, Left), "Moving into a wall should be illegal")
		require.Equal(t, before, s, "Illegal moves should not change the state")
	})

	t.Run("moving into the ghost door is illegal", func(t *testing.T) {
		s, p := newTestState(t, "#P-.#")

		require.False(t, p.Apply(&s, Right))
	})

	t.Run("eating a pellet", func(t *testing.T) {
		s, p := newTestState(t, "#P..#")

		require.True(t, p.Apply(&s, Right))
		require.Equal(t, Point{Row: 0, Col: 2}, s.Pacman())
		require.Equal(t, Right, s.Dir[Pacman])
		require.Equal(t, 10, s.Score)
		require.Equal(t, 1, s.Food)
		require.Equal(t, Empty, s.Level[0][2], "Pellet should be consumed")
	})

	t.Run("eating a power pellet", func(t *testing.T) {
		s, p := newTestState(t, "#Po.#")

		require.True(t, p.Apply(&s, Right))
		require.True(t, s.Invincible)
		require.Equal(t, p.Rules.InvincibleDuration-1, s.InvincibleTicks, "The eating tick should count down")
		require.Equal(t, 50, s.Score)
	})

	t.Run("invincibility wears off", func(t *testing.T) {
		s, p := newTestState(t, "#Po  #")
		p.Rules.InvincibleDuration = 2

		require.True(t, p.Apply(&s, Right))
		require.True(t, s.Invincible)
		require.True(t, p.Apply(&s, Right))
		require.False(t, s.Invincible)
		require.Zero(t, s.InvincibleTicks)
	})

	t.Run("walking into a ghost loses a life", func(t *testing.T) {
		s, p := newTestState(t, "#P G#")

		require.True(t, p.Apply(&s, Right))
		require.Equal(t, 2, s.Lives)
		require.Equal(t, s.Start, s.Loc, "Agents should be reset after a life is lost")
	})

	t.Run("losing the last life ends the game", func(t *testing.T) {
		s, p := newTestState(t, "#P G#")
		s.Lives = 0

		require.True(t, p.Apply(&s, Right))
		require.Equal(t, GameOverLives, s.Lives)
		require.True(t, s.GameOver())
		require.False(t, p.Apply(&s, Right), "No move is legal after game over")
	})

	t.Run("capturing a ghost while invincible", func(t *testing.T) {
		s, p := newTestState(t, "#PoG#")

		require.True(t, p.Apply(&s, Right))
		require.Equal(t, 3, s.Lives, "No life should be lost")
		require.Equal(t, 1, s.GhostsInARow)
		require.Equal(t, 50+200, s.Score)
		require.Equal(t, s.Start[1], s.Loc[1], "Captured ghost should respawn")
	})

	t.Run("wrapping through a tunnel", func(t *testing.T) {
		s, p := newTestState(t, "P"+strings.Repeat("#", Cols-2)+" ")

		require.True(t, p.Apply(&s, Left))
		require.Equal(t, Point{Row: 0, Col: Cols - 1}, s.Pacman())
	})

	t.Run("being deterministic", func(t *testing.T) {
		rules := NewStandardRules()
		p := NewPhysics(rules)
		s1 := NewState(ClassicLevel(), rules)
		s2 := s1.Clone()

		for _, m := range []Move{Left, Left, Left, Up, Up, Right, Down, Left} {
			require.Equal(t, p.Apply(&s1, m), p.Apply(&s2, m))
		}
		require.Equal(t, s1, s2)
	})
}

func TestPhysicsWait(t *testing.T) {
	s, p := newTestState(t, "#P  G#")
	p.Wait(&s)

	require.Equal(t, Point{Row: 0, Col: 1}, s.Pacman(), "Pacman should not move")
	require.Equal(t, Point{Row: 0, Col: 3}, s.Loc[1], "Ghost should step towards pacman")
}

func TestCapturePoints(t *testing.T) {
	rules := NewStandardRules()

	require.Equal(t, 200, rules.CapturePoints(1))
	require.Equal(t, 400, rules.CapturePoints(2))
	require.Equal(t, 1600, rules.CapturePoints(4))
	require.Equal(t, 1600, rules.CapturePoints(7), "Multiplier should stop at four captures")
}
