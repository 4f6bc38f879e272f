package tesseract

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	rng         *rand.Rand
	logger      *zap.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		logger:      zap.NewNop(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every applied token is stored and Undo works.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used by Scramble.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed seeds the random source used by Scramble. Zero means time based.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = NewRand(seed)
	}
}

// WithLogger sets the logger for move and scramble events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
