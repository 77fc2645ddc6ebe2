package game

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed levels/classic.txt
var classicLevel []byte

// Level is a parsed maze layout: the cells plus the starting positions of
// every agent. Levels are immutable once parsed.
type Level struct {
	Cells  [Rows][Cols]Cell
	Starts [NumAgents]Point
	Ghosts int
	Food   int
}

// ParseLevel reads a text maze. Each line is one row:
//
//	#  wall
//	.  pellet
//	o  power pellet
//	-  ghost door
//	P  pacman start
//	G  ghost start (at most MaxGhosts)
//	   anything else is an empty cell
//
// Short lines and missing rows are filled with walls.
func ParseLevel(r io.Reader) (*Level, error) {
	l := &Level{}
	for row := range l.Cells {
		for col := range l.Cells[row] {
			l.Cells[row][col] = Wall
		}
	}

	pacman := false
	row := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if row >= Rows || len(line) > Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, grid is %dx%d", ErrLevelSize, row+1, len(line), Rows, Cols)
		}
		for col, ch := range []byte(line) {
			cell := Empty
			switch ch {
			case '#':
				cell = Wall
			case '.':
				cell = Pellet
				l.Food++
			case 'o':
				cell = PowerPellet
				l.Food++
			case '-':
				cell = GhostDoor
			case 'P':
				if pacman {
					return nil, fmt.Errorf("duplicate pacman start at row %d col %d", row+1, col+1)
				}
				pacman = true
				l.Starts[Pacman] = Point{Row: row, Col: col}
			case 'G':
				if l.Ghosts == MaxGhosts {
					return nil, fmt.Errorf("%w: row %d col %d", ErrTooManyGhosts, row+1, col+1)
				}
				l.Ghosts++
				l.Starts[l.Ghosts] = Point{Row: row, Col: col}
			}
			l.Cells[row][col] = cell
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	if !pacman {
		return nil, ErrNoPacman
	}
	return l, nil
}

// LoadLevel parses the level stored at path.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level: %w", err)
	}
	defer f.Close()

	l, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	return l, nil
}

// ClassicLevel returns the built-in maze.
func ClassicLevel() *Level {
	l, err := ParseLevel(bytes.NewReader(classicLevel))
	if err != nil {
		panic(fmt.Sprintf("built-in level is invalid: %v", err))
	}
	return l
}

// NewState creates the opening state of a game played on level l.
func NewState(l *Level, rules Rules) State {
	s := State{Lives: rules.StartingLives, LevelNumber: 1}
	s.Enter(l)
	return s
}

// Enter loads level l into s, keeping score and lives. Every agent goes
// back to its start and invincibility ends.
func (s *State) Enter(l *Level) {
	s.Level = l.Cells
	s.Food = l.Food
	s.Start = l.Starts
	s.Ghosts = l.Ghosts
	s.Invincible = false
	s.InvincibleTicks = 0
	s.GhostsInARow = 0
	s.resetAgents()
}
