package config

import (
	_ "embed"
)

//go:embed defaults/eggcatch.yaml
var defaultEggCatchYAML []byte

// DefaultEggCatchConfig returns the default egg catcher configuration.
// It mirrors defaults/eggcatch.yaml and is used when the embedded file cannot be parsed.
func DefaultEggCatchConfig() EggCatchConfig {
	return EggCatchConfig{
		Field: FieldConfig{
			Cols: 100,
			Rows: 100,
		},
		Clock: ClockConfig{
			StepRate: 120,
			MinFrame: 0.001,
			MaxFrame: 0.05,
		},
		Basket: BasketConfig{
			Accel:       25,
			MaxSpeed:    50,
			Width:       16,
			Height:      6,
			Lift:        0.5,
			ExtraHeight: 1.5,
			RowOffset:   3,
		},
		Lives: LivesConfig{
			Start: 3,
			Max:   5,
		},
		Spawn: SpawnConfig{
			ColumnOffsets:        []int{-25, -5, 5, 25},
			EdgeCooldown:         4.0,
			EdgeCooldownPerPoint: 0.03,
			MinEdgeCooldown:      0.6,
			WeightNormal:         75,
			WeightBad:            20,
			WeightBeneficial:     5,
		},
		Scoring: ScoringConfig{
			Catch:         2,
			FocusCatch:    5,
			BadCatch:      -2,
			FocusBadCatch: 0,
		},
		Difficulty: DifficultyConfig{
			BaseGravity:           10,
			GravityPerPoint:       0.05,
			MaxFallSpeed:          22,
			BaseSpawnInterval:     1.0,
			SpawnIntervalPerPoint: 0.01,
			MinSpawnInterval:      0.6,
			BadGravity:            1.2,
			BeneficialGravity:     0.5,
		},
		Focus: FocusConfig{
			Enabled:           true,
			StartScore:        50,
			CycleLength:       150,
			ActiveLength:      100,
			GravityMultiplier: 1.15,
			SpawnIntervalCut:  0.05,
			MinSpawnInterval:  0.5,
		},
		Wind: WindConfig{
			Cooldown:         8,
			ChancePerMille:   2,
			MinDuration:      1.2,
			MaxDuration:      2.5,
			MinStrength:      2.0,
			MaxStrength:      6.0,
			FocusMinStrength: 4.0,
			FocusMaxStrength: 10.0,
			VisibleThreshold: 0.05,
			DustPerStep:      8,
			DustBand:         0.7,
			StreakChance:     0.3,
		},
		Effects: EffectsConfig{
			CaughtFade:       0.5,
			SplatParticles:   12,
			ParticleMinSpeed: 500,
			ParticleMaxSpeed: 1500,
			ParticleMinLife:  30,
			ParticleMaxLife:  60,
			FlashFadeIn:      0.2,
			FlashFadeOut:     0.5,
			ScorePulse:       0.2,
			LivesPulse:       0.3,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultEggCatchYAML
}
