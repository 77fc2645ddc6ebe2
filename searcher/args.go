package searcher

// Hyperparameters of the reward signal

const (
	Discount            = 0.99 // Per-depth discount of single-step rewards
	LifeLossPenalty     = 10.0
	LifeLossDepth       = 15 // Life losses at or beyond this depth are not penalized
	InvincibilityReward = 10.0
	GameOverPenalty     = 100.0
)

// RewardConfig holds the tunable constants of the reward signal.
type RewardConfig struct {
	Discount            float64
	LifeLossPenalty     float64
	LifeLossDepth       int
	InvincibilityReward float64
	GameOverPenalty     float64
}

func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		Discount:            Discount,
		LifeLossPenalty:     LifeLossPenalty,
		LifeLossDepth:       LifeLossDepth,
		InvincibilityReward: InvincibilityReward,
		GameOverPenalty:     GameOverPenalty,
	}
}
