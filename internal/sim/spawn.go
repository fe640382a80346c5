package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
)

// Spawner decides once per spawn interval whether a new egg enters,
// rotating through a fixed set of drop columns.
type Spawner struct {
	cfg     config.SpawnConfig
	columns []int // Ascending
}

// NewSpawner builds the drop-column rotation around the field center.
func NewSpawner(cfg *config.EggCatchConfig) Spawner {
	mid := cfg.Field.Cols / 2
	cols := make([]int, 0, len(cfg.Spawn.ColumnOffsets))
	for _, off := range cfg.Spawn.ColumnOffsets {
		cols = append(cols, core.Clamp(mid+off, 0, cfg.Field.Cols-1))
	}
	sort.Ints(cols)
	return Spawner{cfg: cfg.Spawn, columns: cols}
}

// Columns returns the drop-column rotation.
func (sp Spawner) Columns() []int {
	return sp.columns
}

// EdgeCooldown returns the minimum time between spawns on the outermost columns.
func (sp Spawner) EdgeCooldown(score int) float64 {
	return math.Max(sp.cfg.MinEdgeCooldown, sp.cfg.EdgeCooldown-sp.cfg.EdgeCooldownPerPoint*float64(score))
}

func (sp Spawner) isEdge(idx int) bool {
	return idx == 0 || idx == len(sp.columns)-1
}

// Update runs the spawn policy for one step. It reports whether an egg was added.
func (sp Spawner) Update(st *State, rng RandomSource) bool {
	if len(sp.columns) == 0 || st.SpawnTimer < st.SpawnInterval {
		return false
	}

	idx := st.ColumnIndex % len(sp.columns)
	edge := sp.isEdge(idx)
	spawned := false
	if !edge || st.GlobalTime-st.LastEdgeSpawn >= sp.EdgeCooldown(st.Score) {
		st.Entities.Eggs = append(st.Entities.Eggs, newFallingObject(float64(sp.columns[idx]), sp.drawKind(rng)))
		if edge {
			st.LastEdgeSpawn = st.GlobalTime
		}
		spawned = true
	}

	st.ColumnIndex = (idx + 1) % len(sp.columns)
	st.SpawnTimer = 0
	return spawned
}

// drawKind picks a kind from the weighted distribution (75/20/5 by default).
func (sp Spawner) drawKind(rng RandomSource) Kind {
	total := sp.cfg.WeightNormal + sp.cfg.WeightBad + sp.cfg.WeightBeneficial
	if total <= 0 {
		return KindNormal
	}
	r := rng.Intn(total)
	switch {
	case r < sp.cfg.WeightNormal:
		return KindNormal
	case r < sp.cfg.WeightNormal+sp.cfg.WeightBad:
		return KindBad
	default:
		return KindBeneficial
	}
}
