package searcher

import (
	"errors"
	"fmt"
	"strings"
)

// Propagation selects how trajectory rewards are folded into the score of
// the root move that started them.
type Propagation int

const (
	Max     Propagation = iota // Best trajectory seen
	Average                    // Running mean over all trajectories
)

var ErrUnknownPropagation = errors.New("unknown propagation")

func (p Propagation) String() string {
	switch p {
	case Max:
		return "max"
	case Average:
		return "avg"
	}
	return fmt.Sprintf("Propagation(%d)", int(p))
}

func ParsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(s) {
	case "max":
		return Max, nil
	case "avg", "average":
		return Average, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPropagation, s)
}
