package game

// Rules holds the scoring and timing constants of the maze physics.
type Rules struct {
	PelletPoints       int
	PowerPelletPoints  int
	GhostPoints        int // Points for the first capture, doubled for each further capture
	InvincibleDuration int // Ticks of invincibility granted by a power pellet
	StartingLives      int
}

// CapturePoints returns the points for the n-th consecutive capture. The
// multiplier stops growing after MaxGhosts captures.
func (r Rules) CapturePoints(n int) int {
	if n < 1 {
		n = 1
	}
	if n > MaxGhosts {
		n = MaxGhosts
	}
	return r.GhostPoints << (n - 1)
}
