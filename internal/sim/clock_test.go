package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

func TestClockStepsMatchAccumulatedTime(t *testing.T) {
	c := NewClock(config.DefaultEggCatchConfig().Clock)
	h := c.Step()

	deltas := []float64{0.016, 0.017, 0.0001, 0.2, -1, 0.033, 0.05, 0.008, 0.0083, 1e9, 0.004}
	total := 0.0
	steps := 0
	for _, dt := range deltas {
		n, alpha := c.Advance(dt)
		if n > 6 {
			t.Errorf("Advance(%v) ran %d steps, expected at most 6", dt, n)
		}
		if alpha < 0 || alpha >= 1 {
			t.Errorf("Advance(%v) alpha = %v, expected [0,1)", dt, alpha)
		}
		steps += n
		total += math.Max(0.001, math.Min(0.05, dt))

		acc := c.Accumulated()
		if acc < 0 || acc >= h {
			t.Errorf("accumulator %v left [0,h)", acc)
		}
		if got := float64(steps)*h + acc; math.Abs(got-total) > 1e-9 {
			t.Errorf("steps*h+acc = %v, expected %v", got, total)
		}
	}
}

func TestClockClampsFrameTime(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		min, max int
	}{
		// 50ms is six steps up to float rounding
		{"stall is capped", 5.0, 5, 6},
		{"negative becomes minimum", -0.5, 0, 0},
		{"NaN becomes minimum", math.NaN(), 0, 0},
		{"one step", 1.0 / 120, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(config.DefaultEggCatchConfig().Clock)
			if n, _ := c.Advance(tt.dt); n < tt.min || n > tt.max {
				t.Errorf("Advance(%v) = %d steps, expected [%d,%d]", tt.dt, n, tt.min, tt.max)
			}
		})
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(config.DefaultEggCatchConfig().Clock)
	c.Advance(0.004)
	c.Reset()
	if c.Accumulated() != 0 {
		t.Errorf("Reset should clear the accumulator, got %v", c.Accumulated())
	}
}
