package game

import "fmt"

// Point is a maze coordinate. (0,0) is the top-left cell.
type Point struct {
	Row int
	Col int
}

// Add returns the point one step away in direction m. Columns wrap around so
// that rows open at both edges act as tunnels.
func (p Point) Add(m Move) Point {
	dRow, dCol := m.Delta()
	return Point{Row: p.Row + dRow, Col: (p.Col + dCol + Cols) % Cols}
}

func (p Point) inBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Distance is the Manhattan distance between two points.
func (p Point) Distance(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cell is the content of one maze square.
type Cell int8

const (
	Empty Cell = iota
	Wall
	Pellet
	PowerPellet
	GhostDoor
)

// State is a complete snapshot of the game world. Every field is a value or
// a fixed-size array, so assigning a State copies the whole world and two
// states never share storage.
type State struct {
	Loc   [NumAgents]Point // Current positions, index 0 is pacman
	Dir   [NumAgents]Move  // Facing directions
	Start [NumAgents]Point // Respawn positions
	// Number of active ghosts (indices 1..Ghosts)
	Ghosts int

	Invincible      bool
	InvincibleTicks int // Ticks of invincibility left

	Food  int // Pellets left in the level
	Level [Rows][Cols]Cell

	LevelNumber  int
	Score        int
	Lives        int
	GhostsInARow int // Captures in the current invincibility window
}

// Clone returns an independent copy of the state.
func (s *State) Clone() State {
	return *s
}

func (s *State) Pacman() Point {
	return s.Loc[Pacman]
}

// At returns the content of a cell. Anything outside the grid is a wall.
func (s *State) At(p Point) Cell {
	if !p.inBounds() {
		return Wall
	}
	return s.Level[p.Row][p.Col]
}

func (s *State) GameOver() bool {
	return s.Lives <= GameOverLives
}

func (s *State) Cleared() bool {
	return s.Food == 0
}

// resetAgents sends every agent back to its respawn position, facing up.
func (s *State) resetAgents() {
	for i := 0; i <= s.Ghosts; i++ {
		s.Loc[i] = s.Start[i]
		s.Dir[i] = Up
	}
}

// Validate checks that s can be played: the ghost count is in range, every
// active agent stands inside the grid and every direction is a move.
func (s *State) Validate() error {
	if s.Ghosts < 0 || s.Ghosts > MaxGhosts {
		return fmt.Errorf("%w: %d ghosts, at most %d", ErrInvalidState, s.Ghosts, MaxGhosts)
	}
	for i := 0; i <= s.Ghosts; i++ {
		if !s.Loc[i].inBounds() {
			return fmt.Errorf("%w: agent %d at %v is off the grid", ErrInvalidState, i, s.Loc[i])
		}
		if !s.Start[i].inBounds() {
			return fmt.Errorf("%w: agent %d starts at %v off the grid", ErrInvalidState, i, s.Start[i])
		}
	}
	for i, d := range s.Dir {
		if !d.Valid() {
			return fmt.Errorf("%w: agent %d faces %v", ErrInvalidState, i, d)
		}
	}
	if s.Food < 0 || s.InvincibleTicks < 0 {
		return fmt.Errorf("%w: negative counters", ErrInvalidState)
	}
	return nil
}
