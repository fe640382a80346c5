package sim

import (
	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
)

// Basket is the player-controlled catcher. X is its horizontal center.
type Basket struct {
	X, Y  float64
	PrevX float64 // X before the last step, for render interpolation
	VX    float64
}

// Flash is the one-shot colored overlay armed by a life change.
type Flash struct {
	Active bool
	Color  core.Color
	Timer  float64
	Alpha  float64 // 0..1
}

// Pulse is a short HUD emphasis animation.
type Pulse struct {
	Timer float64 // Seconds remaining, 0 when idle
	Scale float64 // 1 when idle
}

// State is the aggregate simulation state. It is mutated only by Sim.Step;
// renderers work on a Snapshot.
type State struct {
	Score     int
	Lives     int
	HighScore int
	GameOver  bool
	Focus     bool

	Difficulty Difficulty // Evaluated at the start of the last step
	Basket     Basket
	Wind       Wind

	GlobalTime    float64
	SpawnTimer    float64
	SpawnInterval float64
	LastEdgeSpawn float64
	ColumnIndex   int
	Steps         uint64

	Entities EntityStore

	Flash      Flash
	ScorePulse Pulse
	LivesPulse float64 // Seconds remaining
}

// Reset restores the state of a fresh game. The high-score watermark survives.
func (st *State) Reset(cfg *config.EggCatchConfig) {
	high := st.HighScore
	entities := st.Entities
	entities.Clear()

	y := float64(cfg.Field.Rows) - cfg.Basket.RowOffset
	x := float64(cfg.Field.Cols / 2)
	*st = State{
		Lives:         cfg.Lives.Start,
		HighScore:     high,
		Basket:        Basket{X: x, Y: y, PrevX: x},
		SpawnInterval: cfg.Difficulty.BaseSpawnInterval,
		LastEdgeSpawn: -100,
		Entities:      entities,
		ScorePulse:    Pulse{Scale: 1},
	}
}

// Snapshot returns a deep copy safe to hand to a renderer.
func (st *State) Snapshot() State {
	s := *st
	s.Entities = st.Entities.Clone()
	return s
}

// flashColor returns the overlay color for a life change.
func flashColor(gained bool) core.Color {
	if gained {
		return core.ColorBrightGreen
	}
	return core.ColorBrightRed
}
