package sim

import (
	"testing"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

func TestWindStartsAfterCooldown(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	ws := NewWindSystem(&cfg)
	m := NewModulator(&cfg)
	h := 1.0 / 120
	rng := fixedRand{i: 0, f: 0.5} // always wins the 2/1000 roll, never a streak

	var w Wind
	var store EntityStore
	ws.Update(&w, &store, rng, m.At(0), h)
	if w.Active {
		t.Fatal("wind should not start during the cooldown")
	}

	w.SinceLast = cfg.Wind.Cooldown
	ws.Update(&w, &store, rng, m.At(0), h)
	if !w.Active {
		t.Fatal("wind should start once the cooldown elapsed")
	}
	if w.Strength != -2.0 {
		t.Errorf("strength = %v, expected -2.0", w.Strength)
	}
	if !approx(w.Remaining, 1.2-h) {
		t.Errorf("remaining = %v, expected %v", w.Remaining, 1.2-h)
	}
	if w.SinceLast != 0 {
		t.Errorf("SinceLast should reset on start, got %v", w.SinceLast)
	}
	if len(store.Dust) != cfg.Wind.DustPerStep {
		t.Errorf("dust = %d, expected %d", len(store.Dust), cfg.Wind.DustPerStep)
	}
	if len(store.Streaks) != 0 {
		t.Errorf("streaks = %d, expected none for a 0.5 draw", len(store.Streaks))
	}
	band := float64(cfg.Field.Rows) * cfg.Wind.DustBand
	for _, d := range store.Dust {
		if d.VX >= 0 {
			t.Errorf("dust should move with a leftward gust, got vx %v", d.VX)
		}
		if d.Y < 0 || d.Y >= band {
			t.Errorf("dust y %v outside the top band", d.Y)
		}
	}
}

func TestWindFocusRangeAndStreaks(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	ws := NewWindSystem(&cfg)
	m := NewModulator(&cfg)
	rng := fixedRand{i: 1 << 30, f: 0.1}
	// This source never wins the roll, so start the gust directly
	var w Wind
	var store EntityStore
	ws.start(&w, rng, m.At(60))
	if w.Strength != 9.99 {
		t.Errorf("focus strength = %v, expected 9.99", w.Strength)
	}
	ws.Update(&w, &store, rng, m.At(60), 1.0/120)
	if len(store.Streaks) != 1 {
		t.Fatalf("streaks = %d, expected 1", len(store.Streaks))
	}
	if s := store.Streaks[0]; s.Dir != 1 || s.Length < 3 || s.Length > 6 {
		t.Errorf("streak = %+v, expected rightward with length 3..6", s)
	}
}

func TestWindEndsAndEffectsFade(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	ws := NewWindSystem(&cfg)
	m := NewModulator(&cfg)
	h := 1.0 / 120
	rng := fixedRand{i: 0, f: 0.5}

	w := Wind{SinceLast: cfg.Wind.Cooldown}
	var store EntityStore
	ws.Update(&w, &store, rng, m.At(0), h)

	steps := 0
	for w.Active && steps < 1000 {
		ws.Update(&w, &store, rng, m.At(0), h)
		steps++
	}
	if w.Active || w.Strength != 0 {
		t.Fatalf("gust should end, got %+v", w)
	}
	// 1.2s gust at 120 steps per second
	if steps < 142 || steps > 144 {
		t.Errorf("gust lasted %d steps, expected about 143", steps)
	}
	if len(store.Dust) == 0 {
		t.Fatal("dust should outlive the gust briefly")
	}

	for i := 0; i < 120; i++ {
		ws.Update(&w, &store, rng, m.At(0), h)
	}
	if len(store.Dust) != 0 || len(store.Streaks) != 0 {
		t.Errorf("effects should expire, got %d dust %d streaks", len(store.Dust), len(store.Streaks))
	}
}

func TestWindDrift(t *testing.T) {
	cfg := config.DefaultEggCatchConfig()
	ws := NewWindSystem(&cfg)
	h := 1.0 / 120

	if got := ws.Drift(Wind{}, 40, h); got != 40 {
		t.Errorf("idle wind moved x to %v", got)
	}
	if got := ws.Drift(Wind{Active: true, Strength: 6}, 40, h); !approx(got, 40.05) {
		t.Errorf("drift = %v, expected 40.05", got)
	}
	if got := ws.Drift(Wind{Active: true, Strength: 6}, 98.99, h); got != 99 {
		t.Errorf("drift should clamp to the last column, got %v", got)
	}
	if got := ws.Drift(Wind{Active: true, Strength: -6}, 0.01, h); got != 0 {
		t.Errorf("drift should clamp to 0, got %v", got)
	}
}
