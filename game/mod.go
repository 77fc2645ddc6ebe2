package game

import "errors"

const (
	Rows = 29 // Maze height in cells
	Cols = 28 // Maze width in cells

	Pacman    = 0             // Agent index of the controlled agent
	MaxGhosts = 4             // Pursuit agents per level
	NumAgents = 1 + MaxGhosts // Controlled agent plus pursuit agents

	GameOverLives = -1 // Lives value of a finished game
)

var (
	ErrLevelSize     = errors.New("level does not fit the maze grid")
	ErrNoPacman      = errors.New("level has no pacman start")
	ErrTooManyGhosts = errors.New("level has too many ghost starts")
	ErrUnknownMove   = errors.New("unknown move")
	ErrInvalidState  = errors.New("invalid state")
)

// Transition applies a move to a state in place and reports whether the move
// was legal. An illegal move leaves the state untouched.
//
// Implementations must be deterministic given (state, move) and must reflect
// life loss in State.Lives, since the planner stops expanding a branch as soon
// as a life is lost.
type Transition interface {
	Apply(s *State, m Move) bool
}

// TransitionFunc adapts a plain function to the Transition interface.
type TransitionFunc func(s *State, m Move) bool

func (f TransitionFunc) Apply(s *State, m Move) bool {
	return f(s, m)
}
