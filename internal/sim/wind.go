package sim

import (
	"math"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
)

// Cosmetic effect lifetimes, seconds.
const (
	dustMinLife   = 0.4
	dustMaxLife   = 0.9
	streakMinLife = 0.25
	streakMaxLife = 0.5
)

// Wind is the gust state: Idle (Active false) or Active.
type Wind struct {
	Active    bool
	Strength  float64 // Signed, cells/s; 0 while idle
	Remaining float64 // Seconds left in the current gust
	SinceLast float64 // Seconds since the last gust started
}

// Visible reports whether the gust is strong enough to draw effects.
func (w Wind) Visible(threshold float64) bool {
	return w.Active && math.Abs(w.Strength) > threshold
}

// WindSystem starts and stops gusts and spawns their dust and streaks.
type WindSystem struct {
	cfg  config.WindConfig
	cols int
	rows int
}

// NewWindSystem creates a wind system for the given tuning.
func NewWindSystem(cfg *config.EggCatchConfig) WindSystem {
	return WindSystem{cfg: cfg.Wind, cols: cfg.Field.Cols, rows: cfg.Field.Rows}
}

// Update advances the gust state by h and maintains its cosmetic effects.
func (ws WindSystem) Update(w *Wind, store *EntityStore, rng RandomSource, d Difficulty, h float64) {
	w.SinceLast += h

	if !w.Active && w.SinceLast >= ws.cfg.Cooldown {
		if rng.Intn(1000) < ws.cfg.ChancePerMille {
			ws.start(w, rng, d)
		}
	}

	if w.Active {
		w.Remaining -= h
		if w.Remaining <= 0 {
			w.Active = false
			w.Strength = 0
			w.Remaining = 0
		}
	}

	// Effects keep fading after the gust ends
	store.ageWindEffects(h)

	if w.Visible(ws.cfg.VisibleThreshold) {
		ws.spawnEffects(w, store, rng)
	}
}

func (ws WindSystem) start(w *Wind, rng RandomSource, d Difficulty) {
	w.Active = true
	w.Remaining = float64(IntRange(rng, int(ws.cfg.MinDuration*1000), int(ws.cfg.MaxDuration*1000))) / 1000
	w.SinceLast = 0

	magnitude := float64(IntRange(rng, int(d.WindMin*100), int(d.WindMax*100))) / 100
	dir := 1.0
	if rng.Intn(2) == 0 {
		dir = -1
	}
	w.Strength = dir * magnitude
}

func (ws WindSystem) spawnEffects(w *Wind, store *EntityStore, rng RandomSource) {
	band := float64(ws.rows) * ws.cfg.DustBand
	for i := 0; i < ws.cfg.DustPerStep; i++ {
		life := FloatRange(rng, dustMinLife, dustMaxLife)
		store.Dust = append(store.Dust, DustParticle{
			X:       FloatRange(rng, 0, float64(ws.cols)),
			Y:       FloatRange(rng, 0, band),
			VX:      w.Strength * FloatRange(rng, 1.5, 3),
			VY:      FloatRange(rng, -0.5, 0.5),
			Life:    life,
			MaxLife: life,
			Alpha:   1,
		})
	}

	if Chance(rng, ws.cfg.StreakChance) {
		dir := 1
		if w.Strength < 0 {
			dir = -1
		}
		life := FloatRange(rng, streakMinLife, streakMaxLife)
		store.Streaks = append(store.Streaks, Streak{
			X:       float64(rng.Intn(max(1, ws.cols))),
			Y:       float64(rng.Intn(max(1, int(band)))),
			Length:  IntRange(rng, 3, 7),
			Dir:     dir,
			Life:    life,
			MaxLife: life,
			Alpha:   1,
		})
	}
}

// Drift shifts a falling object's x by the gust and clamps it to the field.
func (ws WindSystem) Drift(w Wind, x, h float64) float64 {
	if !w.Active {
		return x
	}
	return core.ClampF(x+w.Strength*h, 0, float64(ws.cols-1))
}
