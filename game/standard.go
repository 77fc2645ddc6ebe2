package game

// NewStandardRules returns the arcade scoring rules.
func NewStandardRules() Rules {
	return Rules{
		PelletPoints:       10,
		PowerPelletPoints:  50,
		GhostPoints:        200,
		InvincibleDuration: 30,
		StartingLives:      3,
	}
}
