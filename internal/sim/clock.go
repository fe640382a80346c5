package sim

import (
	"math"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
)

// Clock converts variable real frame time into whole fixed steps.
//
// There is no max-steps guard: the frame clamp alone bounds one call to
// MaxFrame/step steps (6 with the defaults).
type Clock struct {
	step     float64
	minFrame float64
	maxFrame float64
	acc      float64
}

// NewClock creates a clock for the given tuning.
func NewClock(cfg config.ClockConfig) Clock {
	return Clock{
		step:     1 / float64(cfg.StepRate),
		minFrame: cfg.MinFrame,
		maxFrame: cfg.MaxFrame,
	}
}

// Step returns the fixed step size in seconds.
func (c *Clock) Step() float64 {
	return c.step
}

// Accumulated returns the time not yet consumed by a step.
func (c *Clock) Accumulated() float64 {
	return c.acc
}

// Advance adds a real frame delta and returns how many fixed steps are due
// and the leftover fraction of a step in [0, 1) for interpolation.
func (c *Clock) Advance(realDelta float64) (steps int, alpha float64) {
	if math.IsNaN(realDelta) {
		realDelta = c.minFrame
	}
	c.acc += core.ClampF(realDelta, c.minFrame, c.maxFrame)
	for c.acc >= c.step {
		c.acc -= c.step
		steps++
	}
	return steps, c.acc / c.step
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
