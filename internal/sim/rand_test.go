package sim

import "testing"

// fixedRand answers every draw with the same value.
// Intn returns min(i, n-1) so one value works for any range.
type fixedRand struct {
	i int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func (r fixedRand) Float64() float64 { return r.f }

// maxRand draws the top of every range. It never starts a gust.
var maxRand = fixedRand{i: 1 << 30, f: 0.999}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name   string
		r      fixedRand
		lo, hi int
		want   int
	}{
		{"low end", fixedRand{i: 0}, 500, 1500, 500},
		{"high end is exclusive", maxRand, 500, 1500, 1499},
		{"empty range", maxRand, 7, 7, 7},
		{"inverted range", maxRand, 9, 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntRange(tt.r, tt.lo, tt.hi); got != tt.want {
				t.Errorf("IntRange(%d, %d) = %d, expected %d", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFloatRangeAndChance(t *testing.T) {
	r := fixedRand{f: 0.5}
	if got := FloatRange(r, 1.5, 2.5); got != 2.0 {
		t.Errorf("FloatRange = %v, expected 2.0", got)
	}
	if Chance(r, 0.3) {
		t.Error("0.5 draw should fail a 0.3 chance")
	}
	if !Chance(r, 0.6) {
		t.Error("0.5 draw should pass a 0.6 chance")
	}
}

func TestNewRandomIsSeeded(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
