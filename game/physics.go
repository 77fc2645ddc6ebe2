package game

// Physics is the reference transition function of the maze. Pacman moves
// first, then every ghost takes one step. Ghosts chase pacman greedily and
// flee while pacman is invincible, so the outcome of a move depends only on
// the state and the move.
type Physics struct {
	Rules Rules
}

func NewPhysics(rules Rules) *Physics {
	return &Physics{Rules: rules}
}

// Apply moves pacman one step in direction m and advances the world by one
// tick. Moving into a wall or the ghost door is illegal and leaves s untouched.
func (p *Physics) Apply(s *State, m Move) bool {
	if !m.Valid() || s.GameOver() {
		return false
	}
	to := s.Pacman().Add(m)
	if !pacmanCanEnter(s.At(to)) {
		return false
	}

	s.Loc[Pacman] = to
	s.Dir[Pacman] = m
	p.eat(s, to)
	p.advance(s)
	return true
}

// Wait advances the world by one tick without moving pacman.
func (p *Physics) Wait(s *State) {
	if s.GameOver() {
		return
	}
	p.advance(s)
}

func (p *Physics) eat(s *State, at Point) {
	switch s.Level[at.Row][at.Col] {
	case Pellet:
		s.Score += p.Rules.PelletPoints
	case PowerPellet:
		s.Score += p.Rules.PowerPelletPoints
		s.Invincible = true
		s.InvincibleTicks = p.Rules.InvincibleDuration
		s.GhostsInARow = 0
	default:
		return
	}
	s.Level[at.Row][at.Col] = Empty
	s.Food--
}

// advance resolves collisions, moves the ghosts and counts down invincibility.
// Checking before the ghosts move also covers pacman and a ghost swapping
// cells.
func (p *Physics) advance(s *State) {
	if p.collide(s) {
		return
	}
	for g := 1; g <= s.Ghosts; g++ {
		p.moveGhost(s, g)
	}
	if p.collide(s) {
		return
	}

	if s.Invincible {
		s.InvincibleTicks--
		if s.InvincibleTicks <= 0 {
			s.Invincible = false
			s.InvincibleTicks = 0
			s.GhostsInARow = 0
		}
	}
}

// collide resolves every ghost sharing pacman's cell. It reports whether
// pacman lost a life.
func (p *Physics) collide(s *State) bool {
	for g := 1; g <= s.Ghosts; g++ {
		if s.Loc[g] == s.Pacman() && p.meet(s, g) {
			return true
		}
	}
	return false
}

// meet resolves pacman and ghost g sharing a cell. It reports whether pacman
// lost a life.
func (p *Physics) meet(s *State, g int) bool {
	if s.Invincible {
		s.GhostsInARow++
		s.Score += p.Rules.CapturePoints(s.GhostsInARow)
		s.Loc[g] = s.Start[g]
		s.Dir[g] = Up
		return false
	}

	s.Lives--
	if s.Lives < GameOverLives {
		s.Lives = GameOverLives
	}
	s.Invincible = false
	s.InvincibleTicks = 0
	s.GhostsInARow = 0
	s.resetAgents()
	return true
}

// moveGhost steps ghost g towards pacman, or away from it while it is
// invincible. A ghost only turns back when it has no other way to go. Ties
// are broken in move order.
func (p *Physics) moveGhost(s *State, g int) {
	from := s.Loc[g]
	target := s.Pacman()
	back := s.Dir[g].Reverse()

	best, bestDist, found := back, 0, false
	for _, m := range Moves {
		if m == back {
			continue
		}
		next := from.Add(m)
		if !ghostCanEnter(s.At(next)) {
			continue
		}
		d := next.Distance(target)
		if !found || (s.Invincible && d > bestDist) || (!s.Invincible && d < bestDist) {
			best, bestDist, found = m, d, true
		}
	}
	if !found && !ghostCanEnter(s.At(from.Add(back))) {
		return // boxed in
	}

	s.Loc[g] = from.Add(best)
	s.Dir[g] = best
}

func pacmanCanEnter(c Cell) bool {
	return c == Empty || c == Pellet || c == PowerPellet
}

func ghostCanEnter(c Cell) bool {
	return c != Wall
}
