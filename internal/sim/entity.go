package sim

import (
	"math"

	"github.com/vovakirdan/egg-catcher/internal/core"
)

// Kind is the type of a falling object, fixed at spawn.
type Kind uint8

const (
	KindNormal     Kind = iota // +score, costs a life when missed
	KindBad                    // -score and a life when caught, harmless when missed
	KindBeneficial             // +score and a life when caught
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBad:
		return "bad"
	case KindBeneficial:
		return "beneficial"
	default:
		return "unknown"
	}
}

// Tint returns the color an object of this kind is drawn with.
// Splat particles inherit it.
func (k Kind) Tint() core.Color {
	switch k {
	case KindNormal:
		return core.ColorWhite
	case KindBad:
		return core.ColorRed
	case KindBeneficial:
		return core.ColorPink
	default:
		return core.ColorDefault
	}
}

// Lifecycle is the state of a falling object. Transitions are one-way:
// Falling -> Caught or Falling -> Splat.
type Lifecycle uint8

const (
	Falling Lifecycle = iota
	Caught
	Splat
)

func (l Lifecycle) String() string {
	switch l {
	case Falling:
		return "falling"
	case Caught:
		return "caught"
	case Splat:
		return "splat"
	default:
		return "unknown"
	}
}

// FallingObject is one spawned egg. Position is in continuous grid cells.
type FallingObject struct {
	X, Y      float64
	PrevY     float64 // Y before the last step, for render interpolation
	VY        float64
	Kind      Kind
	State     Lifecycle
	AnimTimer float64 // Seconds since leaving Falling
	Scale     float64
	Alpha     float64
	Tint      core.Color
}

func newFallingObject(x float64, kind Kind) FallingObject {
	return FallingObject{
		X:     x,
		Kind:  kind,
		State: Falling,
		Scale: 1,
		Alpha: 1,
		Tint:  kind.Tint(),
	}
}

// Fixed-point scale factor: 1 cell = 1000 units.
const FixedScale = 1000

// Fixed is a fixed-point value scaled by FixedScale.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point, truncating.
func ToFixed(v float64) Fixed {
	return Fixed(int(v * FixedScale))
}

// ToCell converts fixed-point to a cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / FixedScale
}

// Float converts fixed-point back to cells.
func (f Fixed) Float() float64 {
	return float64(f) / FixedScale
}

// SplatParticle is debris from a missed egg. Lifetime counts 60 ticks per second.
type SplatParticle struct {
	X, Y     Fixed
	VX, VY   Fixed // Per second
	Lifetime int
	Alpha    int // 0..255
	Tint     core.Color
}

// DustParticle is a cosmetic speck carried by the wind.
type DustParticle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Alpha   float64
}

// Streak is a cosmetic directional marker shown during a gust.
type Streak struct {
	X, Y    float64
	Length  int
	Dir     int // -1 or 1
	Life    float64
	MaxLife float64
	Alpha   float64
}

// EntityStore owns the live collections of the simulation.
type EntityStore struct {
	Eggs      []FallingObject
	Particles []SplatParticle
	Dust      []DustParticle
	Streaks   []Streak
}

// Clear drops every entity, keeping the backing arrays.
func (s *EntityStore) Clear() {
	s.Eggs = s.Eggs[:0]
	s.Particles = s.Particles[:0]
	s.Dust = s.Dust[:0]
	s.Streaks = s.Streaks[:0]
}

// Clone returns a deep copy.
func (s *EntityStore) Clone() EntityStore {
	return EntityStore{
		Eggs:      append([]FallingObject(nil), s.Eggs...),
		Particles: append([]SplatParticle(nil), s.Particles...),
		Dust:      append([]DustParticle(nil), s.Dust...),
		Streaks:   append([]Streak(nil), s.Streaks...),
	}
}

// burst emits the one-time splat debris for an egg.
func (s *EntityStore) burst(rng RandomSource, egg FallingObject, count, minSpeed, maxSpeed, minLife, maxLife int) {
	x, y := ToFixed(egg.X), ToFixed(egg.Y)
	for i := 0; i < count; i++ {
		rad := float64(rng.Intn(360)) * math.Pi / 180
		speed := float64(IntRange(rng, minSpeed, maxSpeed))
		s.Particles = append(s.Particles, SplatParticle{
			X:        x,
			Y:        y,
			VX:       Fixed(int(math.Cos(rad) * speed)),
			VY:       Fixed(int(math.Sin(rad) * speed)),
			Lifetime: IntRange(rng, minLife, maxLife),
			Alpha:    255,
			Tint:     egg.Tint,
		})
	}
}

// ageParticles advances splat debris by one tick and drops dead particles.
func (s *EntityStore) ageParticles() {
	alive := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX / 60
		p.Y += p.VY / 60
		p.Lifetime--
		p.Alpha = max(0, p.Lifetime*255/60)
		if p.Lifetime > 0 {
			alive = append(alive, p)
		}
	}
	s.Particles = alive
}

// ageWindEffects advances dust and streaks by h seconds and drops expired ones.
func (s *EntityStore) ageWindEffects(h float64) {
	dust := s.Dust[:0]
	for _, d := range s.Dust {
		d.X += d.VX * h
		d.Y += d.VY * h
		d.Life -= h
		if d.Life <= 0 {
			continue
		}
		d.Alpha = d.Life / d.MaxLife
		dust = append(dust, d)
	}
	s.Dust = dust

	streaks := s.Streaks[:0]
	for _, st := range s.Streaks {
		st.Life -= h
		if st.Life <= 0 {
			continue
		}
		st.Alpha = st.Life / st.MaxLife
		streaks = append(streaks, st)
	}
	s.Streaks = streaks
}
