package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

func TestSpawnerColumns(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	cfg.Spawn.ColumnOffsets = []int{25, -5, 5, -25}
	sp := NewSpawner(&cfg)
	if want := []int{25, 45, 55, 75}; !reflect.DeepEqual(sp.Columns(), want) {
		t.Errorf("Columns() = %v, expected %v", sp.Columns(), want)
	}
}

func TestSpawnerEdgeCooldown(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	sp := NewSpawner(&cfg)
	st := &State{}
	st.Reset(&cfg)
	rng := fixedRand{i: 0}

	// Timer due at every attempt, clock frozen so the edge cooldown never elapses
	st.GlobalTime = 10
	wantSpawned := []bool{true, true, true, false, false, true, true, false}
	wantX := []float64{25, 45, 55, 45, 55}
	for i, want := range wantSpawned {
		st.SpawnTimer = st.SpawnInterval
		if got := sp.Update(st, rng); got != want {
			t.Errorf("attempt %d: spawned = %v, expected %v", i, got, want)
		}
		if st.SpawnTimer != 0 {
			t.Errorf("attempt %d: timer should reset, got %v", i, st.SpawnTimer)
		}
	}
	if st.ColumnIndex != len(wantSpawned)%4 {
		t.Errorf("rotation index = %d, expected %d", st.ColumnIndex, len(wantSpawned)%4)
	}
	if st.LastEdgeSpawn != 10 {
		t.Errorf("LastEdgeSpawn = %v, expected 10", st.LastEdgeSpawn)
	}

	if len(st.Entities.Eggs) != len(wantX) {
		t.Fatalf("spawned %d eggs, expected %d", len(st.Entities.Eggs), len(wantX))
	}
	for i, egg := range st.Entities.Eggs {
		if egg.X != wantX[i] || egg.Y != 0 || egg.State != Falling {
			t.Errorf("egg %d = %+v, expected falling at (%v, 0)", i, egg, wantX[i])
		}
	}
}

func TestSpawnerEdgeCooldownShrinksWithScore(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	sp := NewSpawner(&cfg)
	tests := map[int]float64{0: 4.0, 50: 2.5, 200: 0.6}
	for score, want := range tests {
		if got := sp.EdgeCooldown(score); !approx(got, want) {
			t.Errorf("EdgeCooldown(%d) = %v, expected %v", score, got, want)
		}
	}
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	sp := NewSpawner(&cfg)
	st := &State{}
	st.Reset(&cfg)
	st.SpawnTimer = st.SpawnInterval - 0.001
	if sp.Update(st, fixedRand{}) {
		t.Error("should not spawn before the interval")
	}
	if st.ColumnIndex != 0 {
		t.Error("rotation should not advance before the interval")
	}
}

func TestDrawKindWeights(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	sp := NewSpawner(&cfg)
	tests := []struct {
		draw int
		want Kind
	}{
		{0, KindNormal},
		{74, KindNormal},
		{75, KindBad},
		{94, KindBad},
		{95, KindBeneficial},
		{99, KindBeneficial},
	}
	for _, tt := range tests {
		k := sp.drawKind(fixedRand{i: tt.draw})
		if k != tt.want {
			t.Errorf("draw %d = %s, expected %s", tt.draw, k, tt.want)
		}
		if egg := newFallingObject(0, k); egg.Tint != k.Tint() {
			t.Errorf("%s egg tint = %v, expected %v", k, egg.Tint, k.Tint())
		}
	}
}
