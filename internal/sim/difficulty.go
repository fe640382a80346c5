package sim

import (
	"math"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

// Difficulty holds the parameters derived from the score for one step.
type Difficulty struct {
	Focus         bool
	Gravity       float64 // Base downward acceleration, cells/s²
	MaxFall       float64 // Terminal velocity, cells/s
	SpawnInterval float64 // Seconds between spawn attempts
	WindMin       float64 // Gust magnitude range, cells/s
	WindMax       float64
}

// Modulator derives difficulty from the cumulative score.
// It is a pure function of its config and the score.
type Modulator struct {
	diff  config.DifficultyConfig
	focus config.FocusConfig
	wind  config.WindConfig
}

// NewModulator creates a modulator for the given tuning.
func NewModulator(cfg *config.EggCatchConfig) Modulator {
	return Modulator{
		diff:  cfg.Difficulty,
		focus: cfg.Focus,
		wind:  cfg.Wind,
	}
}

// FocusActive reports whether focus mode is on at this score.
// With defaults: on for [50,149], [200,299], [350,449] and so on.
func (m Modulator) FocusActive(score int) bool {
	f := m.focus
	if !f.Enabled || score < f.StartScore || f.CycleLength <= 0 {
		return false
	}
	return (score-f.StartScore)%f.CycleLength < f.ActiveLength
}

// At returns the difficulty for a score.
func (m Modulator) At(score int) Difficulty {
	s := float64(score)
	d := Difficulty{
		Focus:         m.FocusActive(score),
		Gravity:       m.diff.BaseGravity + m.diff.GravityPerPoint*s,
		MaxFall:       m.diff.MaxFallSpeed,
		SpawnInterval: math.Max(m.diff.MinSpawnInterval, m.diff.BaseSpawnInterval-m.diff.SpawnIntervalPerPoint*s),
		WindMin:       m.wind.MinStrength,
		WindMax:       m.wind.MaxStrength,
	}
	if d.Focus {
		d.Gravity *= m.focus.GravityMultiplier
		d.MaxFall *= m.focus.GravityMultiplier
		d.SpawnInterval = math.Max(m.focus.MinSpawnInterval, d.SpawnInterval-m.focus.SpawnIntervalCut)
		d.WindMin = m.wind.FocusMinStrength
		d.WindMax = m.wind.FocusMaxStrength
	}
	return d
}

// GravityFor scales the base gravity by the kind's multiplier.
func (m Modulator) GravityFor(d Difficulty, k Kind) float64 {
	switch k {
	case KindNormal:
		return d.Gravity
	case KindBad:
		return d.Gravity * m.diff.BadGravity
	case KindBeneficial:
		return d.Gravity * m.diff.BeneficialGravity
	default:
		return d.Gravity
	}
}
