package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is one of the four directions the controlled agent can take.
// The numeric order is also the order in which the planner scans scores.
type Move int

const (
	Left Move = iota
	Right
	Up
	Down
)

const NumMoves = 4

// Moves lists every move in scan order.
var Moves = [NumMoves]Move{Left, Right, Up, Down}

var moveNames = [NumMoves]string{"Left", "Right", "Up", "Down"}

func (m Move) Valid() bool {
	return m >= 0 && m < NumMoves
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Delta returns the row and column offset of a single step in direction m.
func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction.
func (m Move) Reverse() Move {
	switch m {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// ParseMove parses a move name, ignoring case.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if strings.EqualFold(name, s) {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

func (m Move) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMove, int(m))
	}
	return json.Marshal(m.String())
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseMove(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
