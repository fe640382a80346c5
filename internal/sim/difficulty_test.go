package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFocusActiveBoundaries(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	m := NewModulator(&cfg)

	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{49, false},
		{50, true},
		{149, true},
		{150, false},
		{199, false},
		{200, true},
		{299, true},
		{300, false},
		{349, false},
		{350, true},
		{449, true},
	}
	for _, tt := range tests {
		if got := m.FocusActive(tt.score); got != tt.want {
			t.Errorf("FocusActive(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestFocusDisabled(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	cfg.Focus.Enabled = false
	m := NewModulator(&cfg)
	if m.FocusActive(60) {
		t.Error("disabled focus should never activate")
	}
}

func TestModulatorAt(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	m := NewModulator(&cfg)

	tests := []struct {
		score                   int
		gravity, maxFall, spawn float64
		windMin, windMax        float64
	}{
		{0, 10, 22, 1.0, 2, 6},
		{20, 11, 22, 0.8, 2, 6},
		{40, 12, 22, 0.6, 2, 6},
		{49, 12.45, 22, 0.6, 2, 6},
		// Focus: x1.15 gravity and fall speed, interval cut to the 0.5 floor
		{100, 15 * 1.15, 22 * 1.15, 0.55, 4, 10},
		{160, 18, 22, 0.6, 2, 6},
	}
	for _, tt := range tests {
		d := m.At(tt.score)
		if !approx(d.Gravity, tt.gravity) || !approx(d.MaxFall, tt.maxFall) || !approx(d.SpawnInterval, tt.spawn) {
			t.Errorf("At(%d) = gravity %v fall %v spawn %v, expected %v %v %v",
				tt.score, d.Gravity, d.MaxFall, d.SpawnInterval, tt.gravity, tt.maxFall, tt.spawn)
		}
		if d.WindMin != tt.windMin || d.WindMax != tt.windMax {
			t.Errorf("At(%d) wind range = [%v,%v], expected [%v,%v]", tt.score, d.WindMin, d.WindMax, tt.windMin, tt.windMax)
		}
	}
}

func TestGravityForKind(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	m := NewModulator(&cfg)
	d := m.At(0)

	tests := map[Kind]float64{
		KindNormal:     10,
		KindBad:        12,
		KindBeneficial: 5,
	}
	for k, want := range tests {
		if got := m.GravityFor(d, k); !approx(got, want) {
			t.Errorf("GravityFor(%s) = %v, expected %v", k, got, want)
		}
	}
}
