// Package config provides YAML-based tuning for the egg catcher simulation
// and the difficulty presets exposed on the command line.
package config

import (
	"errors"
	"fmt"
)

// EggCatchConfig contains every tunable of the simulation.
// Units: playfield cells, seconds, cells per second.
type EggCatchConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Clock      ClockConfig      `yaml:"clock"`
	Basket     BasketConfig     `yaml:"basket"`
	Lives      LivesConfig      `yaml:"lives"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Focus      FocusConfig      `yaml:"focus"`
	Wind       WindConfig       `yaml:"wind"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// FieldConfig defines the playfield grid.
type FieldConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ClockConfig defines the fixed-step clock.
type ClockConfig struct {
	StepRate int     `yaml:"step_rate"` // Physics steps per second
	MinFrame float64 `yaml:"min_frame"` // Lower clamp on real frame time
	MaxFrame float64 `yaml:"max_frame"` // Upper clamp on real frame time
}

// BasketConfig defines basket movement and its catch hitbox.
type BasketConfig struct {
	Accel       float64 `yaml:"accel"`        // Velocity approach rate
	MaxSpeed    float64 `yaml:"max_speed"`    // Target speed while a direction is held
	Width       float64 `yaml:"width"`        // Hitbox width, centered on the basket x
	Height      float64 `yaml:"height"`       // Drawn height
	Lift        float64 `yaml:"lift"`         // Hitbox raised above the basket anchor
	ExtraHeight float64 `yaml:"extra_height"` // Hitbox height beyond the drawn height
	RowOffset   float64 `yaml:"row_offset"`   // Basket anchor distance from the bottom row
}

// LivesConfig defines the life counter bounds.
type LivesConfig struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"`
}

// SpawnConfig defines drop columns, edge cooldown and the kind distribution.
type SpawnConfig struct {
	ColumnOffsets        []int   `yaml:"column_offsets"` // Relative to the field center
	EdgeCooldown         float64 `yaml:"edge_cooldown"`
	EdgeCooldownPerPoint float64 `yaml:"edge_cooldown_per_point"`
	MinEdgeCooldown      float64 `yaml:"min_edge_cooldown"`
	WeightNormal         int     `yaml:"weight_normal"`
	WeightBad            int     `yaml:"weight_bad"`
	WeightBeneficial     int     `yaml:"weight_beneficial"`
}

// ScoringConfig defines score deltas per catch.
type ScoringConfig struct {
	Catch         int `yaml:"catch"`
	FocusCatch    int `yaml:"focus_catch"`
	BadCatch      int `yaml:"bad_catch"`
	FocusBadCatch int `yaml:"focus_bad_catch"`
}

// DifficultyConfig defines the score-driven ramp.
type DifficultyConfig struct {
	BaseGravity           float64 `yaml:"base_gravity"`
	GravityPerPoint       float64 `yaml:"gravity_per_point"`
	MaxFallSpeed          float64 `yaml:"max_fall_speed"`
	BaseSpawnInterval     float64 `yaml:"base_spawn_interval"`
	SpawnIntervalPerPoint float64 `yaml:"spawn_interval_per_point"`
	MinSpawnInterval      float64 `yaml:"min_spawn_interval"`
	BadGravity            float64 `yaml:"bad_gravity"`        // Multiplier for bad eggs
	BeneficialGravity     float64 `yaml:"beneficial_gravity"` // Multiplier for life eggs
}

// FocusConfig defines the cyclic focus mode.
type FocusConfig struct {
	Enabled           bool    `yaml:"enabled"`
	StartScore        int     `yaml:"start_score"`
	CycleLength       int     `yaml:"cycle_length"`
	ActiveLength      int     `yaml:"active_length"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	SpawnIntervalCut  float64 `yaml:"spawn_interval_cut"`
	MinSpawnInterval  float64 `yaml:"min_spawn_interval"`
}

// WindConfig defines gusts and their cosmetic effects.
type WindConfig struct {
	Cooldown         float64 `yaml:"cooldown"`
	ChancePerMille   int     `yaml:"chance_per_mille"` // Per physics step once off cooldown
	MinDuration      float64 `yaml:"min_duration"`
	MaxDuration      float64 `yaml:"max_duration"`
	MinStrength      float64 `yaml:"min_strength"`
	MaxStrength      float64 `yaml:"max_strength"`
	FocusMinStrength float64 `yaml:"focus_min_strength"`
	FocusMaxStrength float64 `yaml:"focus_max_strength"`
	VisibleThreshold float64 `yaml:"visible_threshold"`
	DustPerStep      int     `yaml:"dust_per_step"`
	DustBand         float64 `yaml:"dust_band"` // Fraction of the field height dust spawns in
	StreakChance     float64 `yaml:"streak_chance"`
}

// EffectsConfig defines transient visual state owned by the simulation.
type EffectsConfig struct {
	CaughtFade       float64 `yaml:"caught_fade"`
	SplatParticles   int     `yaml:"splat_particles"`
	ParticleMinSpeed int     `yaml:"particle_min_speed"` // Fixed-point, x1000
	ParticleMaxSpeed int     `yaml:"particle_max_speed"`
	ParticleMinLife  int     `yaml:"particle_min_life"` // Ticks, 60 per second
	ParticleMaxLife  int     `yaml:"particle_max_life"`
	FlashFadeIn      float64 `yaml:"flash_fade_in"`
	FlashFadeOut     float64 `yaml:"flash_fade_out"`
	ScorePulse       float64 `yaml:"score_pulse"`
	LivesPulse       float64 `yaml:"lives_pulse"`
}

// Validate reports every setting that would make the simulation misbehave.
func (c EggCatchConfig) Validate() error {
	var errs []error
	if c.Field.Cols < 2 || c.Field.Rows < 4 {
		errs = append(errs, fmt.Errorf("field %dx%d is too small", c.Field.Cols, c.Field.Rows))
	}
	if c.Clock.StepRate <= 0 {
		errs = append(errs, fmt.Errorf("clock.step_rate must be positive, got %d", c.Clock.StepRate))
	}
	if c.Clock.MinFrame <= 0 || c.Clock.MaxFrame < c.Clock.MinFrame {
		errs = append(errs, fmt.Errorf("clock frame clamp [%v, %v] is invalid", c.Clock.MinFrame, c.Clock.MaxFrame))
	}
	if c.Lives.Start <= 0 || c.Lives.Max < c.Lives.Start {
		errs = append(errs, fmt.Errorf("lives start=%d max=%d are invalid", c.Lives.Start, c.Lives.Max))
	}
	if len(c.Spawn.ColumnOffsets) == 0 {
		errs = append(errs, errors.New("spawn.column_offsets must not be empty"))
	}
	if c.Spawn.WeightNormal < 0 || c.Spawn.WeightBad < 0 || c.Spawn.WeightBeneficial < 0 ||
		c.Spawn.WeightNormal+c.Spawn.WeightBad+c.Spawn.WeightBeneficial == 0 {
		errs = append(errs, errors.New("spawn weights must be non-negative and not all zero"))
	}
	if c.Focus.Enabled && (c.Focus.CycleLength <= 0 || c.Focus.ActiveLength > c.Focus.CycleLength) {
		errs = append(errs, fmt.Errorf("focus cycle %d/%d is invalid", c.Focus.ActiveLength, c.Focus.CycleLength))
	}
	if c.Wind.MaxDuration < c.Wind.MinDuration || c.Wind.MaxStrength < c.Wind.MinStrength ||
		c.Wind.FocusMaxStrength < c.Wind.FocusMinStrength {
		errs = append(errs, errors.New("wind ranges must have max >= min"))
	}
	if c.Effects.ParticleMaxSpeed < c.Effects.ParticleMinSpeed || c.Effects.ParticleMaxLife < c.Effects.ParticleMinLife {
		errs = append(errs, errors.New("particle ranges must have max >= min"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
