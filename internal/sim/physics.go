// Package sim implements the deterministic fixed-step egg catcher simulation:
// spawning, falling, wind, catches and misses, scoring and lives.
// It has no I/O and never blocks; all randomness comes from a RandomSource.
package sim

import (
	"math"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
)

// StepInput is the held-direction state for one physics step.
type StepInput struct {
	Left  bool
	Right bool
}

// Sim owns a State and the subsystems that advance it.
type Sim struct {
	cfg     *config.EggCatchConfig
	rng     RandomSource
	mod     Modulator
	wind    WindSystem
	spawner Spawner
	clock   Clock
	state   State
}

// New creates a simulation ready to play.
func New(cfg *config.EggCatchConfig, rng RandomSource) *Sim {
	s := &Sim{
		cfg:     cfg,
		rng:     rng,
		mod:     NewModulator(cfg),
		wind:    NewWindSystem(cfg),
		spawner: NewSpawner(cfg),
		clock:   NewClock(cfg.Clock),
	}
	s.Reset()
	return s
}

// Reset starts a fresh game, keeping the high-score watermark.
func (s *Sim) Reset() {
	s.state.Reset(s.cfg)
	s.clock.Reset()
}

// SetHighScore seeds the watermark, e.g. from a saved profile.
func (s *Sim) SetHighScore(v int) {
	s.state.HighScore = max(s.state.HighScore, v)
}

// State returns the live state. Callers must not mutate it.
func (s *Sim) State() *State {
	return &s.state
}

// Snapshot returns a deep copy of the state.
func (s *Sim) Snapshot() State {
	return s.state.Snapshot()
}

// Modulator returns the difficulty modulator in use.
func (s *Sim) Modulator() Modulator {
	return s.mod
}

// Spawner returns the spawn policy in use.
func (s *Sim) Spawner() Spawner {
	return s.spawner
}

// StepSize returns the fixed step in seconds.
func (s *Sim) StepSize() float64 {
	return s.clock.Step()
}

// Advance feeds one real frame delta through the clock and runs every due step.
// It returns the number of steps run and the interpolation alpha.
func (s *Sim) Advance(realDelta float64, in StepInput) (int, float64) {
	steps, alpha := s.clock.Advance(realDelta)
	for i := 0; i < steps; i++ {
		s.Step(in)
	}
	return steps, alpha
}

// Step advances the simulation by one fixed step. It is a no-op once the game is over.
func (s *Sim) Step(in StepInput) {
	st := &s.state
	if st.GameOver {
		return
	}
	h := s.clock.Step()
	st.Steps++

	// 1. Timers
	st.GlobalTime += h
	st.SpawnTimer += h

	// 2. Difficulty, evaluated once and shared by wind, spawn and gravity
	d := s.mod.At(st.Score)
	st.Difficulty = d
	st.Focus = d.Focus
	st.SpawnInterval = d.SpawnInterval

	// 3. Wind
	s.wind.Update(&st.Wind, &st.Entities, s.rng, d, h)

	// 4. Spawn
	s.spawner.Update(st, s.rng)

	// 5. Basket
	s.moveBasket(in, h)

	// 6-7. Eggs
	caught, lost, gained := s.updateEggs(d, h)

	// 8-9. Watermark and game over
	st.HighScore = max(st.HighScore, st.Score)
	st.GameOver = st.Lives <= 0

	if caught && !st.GameOver {
		st.ScorePulse = Pulse{Timer: s.cfg.Effects.ScorePulse, Scale: 1.5}
	}
	if (lost || gained) && !st.GameOver {
		st.LivesPulse = s.cfg.Effects.LivesPulse
	}

	// 10. Transient visuals
	s.ageEffects(h)
}

func (s *Sim) moveBasket(in StepInput, h float64) {
	b := &s.state.Basket
	target := 0.0
	switch {
	case in.Left && !in.Right:
		target = -s.cfg.Basket.MaxSpeed
	case in.Right && !in.Left:
		target = s.cfg.Basket.MaxSpeed
	}

	b.PrevX = b.X
	b.VX += (target - b.VX) * math.Min(1, h*s.cfg.Basket.Accel)
	b.X = core.ClampF(b.X+b.VX*h, 0, float64(s.cfg.Field.Cols-1))
}

// hitbox returns the basket catch area. It sits slightly above the drawn basket.
func (s *Sim) hitbox() core.RectF {
	b := s.state.Basket
	bc := s.cfg.Basket
	return core.NewRectF(b.X-bc.Width/2, b.Y-bc.Lift, bc.Width, bc.Height+bc.ExtraHeight)
}

// updateEggs integrates falling eggs, resolves catches and misses and retires
// finished animations. It reports whether anything was caught and whether a
// life was actually lost or gained.
func (s *Sim) updateEggs(d Difficulty, h float64) (caught, lost, gained bool) {
	st := &s.state
	fx := s.cfg.Effects
	basket := s.hitbox()
	missY := float64(s.cfg.Field.Rows - 1)

	survivors := st.Entities.Eggs[:0]
	for _, egg := range st.Entities.Eggs {
		egg.PrevY = egg.Y

		switch egg.State {
		case Falling:
			egg.VY = math.Min(egg.VY+s.mod.GravityFor(d, egg.Kind)*h, d.MaxFall)
			egg.Y += egg.VY * h
			egg.X = s.wind.Drift(st.Wind, egg.X, h)

			if core.NewRectF(egg.X, egg.Y, 1, 1).Intersects(basket) {
				egg.State = Caught
				egg.AnimTimer = 0
				caught = true
				l, g := s.resolveCatch(egg.Kind, d.Focus)
				lost = lost || l
				gained = gained || g
			} else if egg.Y >= missY {
				egg.State = Splat
				egg.AnimTimer = 0
				if s.resolveMiss(egg.Kind) {
					lost = true
				}
			}
			survivors = append(survivors, egg)

		case Caught:
			egg.AnimTimer += h
			egg.Scale = math.Max(0, 1-egg.AnimTimer*3)
			egg.Alpha = math.Max(0, 1-egg.AnimTimer*2)
			if egg.AnimTimer >= fx.CaughtFade {
				continue
			}
			survivors = append(survivors, egg)

		case Splat:
			// The burst fires on the step after the miss, then the egg is gone
			st.Entities.burst(s.rng, egg, fx.SplatParticles,
				fx.ParticleMinSpeed, fx.ParticleMaxSpeed, fx.ParticleMinLife, fx.ParticleMaxLife)
		}
	}
	st.Entities.Eggs = survivors
	return caught, lost, gained
}

// resolveCatch applies the score and life effects of a caught egg.
func (s *Sim) resolveCatch(k Kind, focus bool) (lost, gained bool) {
	st := &s.state
	sc := s.cfg.Scoring

	var delta int
	switch k {
	case KindNormal, KindBeneficial:
		delta = sc.Catch
		if focus {
			delta = sc.FocusCatch
		}
	case KindBad:
		delta = sc.BadCatch
		if focus {
			delta = sc.FocusBadCatch
		}
	}
	st.Score = max(0, st.Score+delta)

	switch k {
	case KindNormal:
	case KindBad:
		lost = s.changeLives(-1)
	case KindBeneficial:
		gained = s.changeLives(1)
	}
	if lost || gained {
		st.Flash = Flash{Active: true, Color: flashColor(gained)}
	}
	return lost, gained
}

// resolveMiss applies the life effect of an egg hitting the ground.
func (s *Sim) resolveMiss(k Kind) (lost bool) {
	switch k {
	case KindNormal, KindBeneficial:
		return s.changeLives(-1)
	case KindBad:
		return false
	}
	return false
}

// changeLives adds delta within [0, max] and reports whether the count changed.
func (s *Sim) changeLives(delta int) bool {
	st := &s.state
	old := st.Lives
	st.Lives = core.Clamp(st.Lives+delta, 0, s.cfg.Lives.Max)
	return st.Lives != old
}

func (s *Sim) ageEffects(h float64) {
	st := &s.state
	fx := s.cfg.Effects

	if st.Flash.Active {
		st.Flash.Timer += h
		switch t := st.Flash.Timer; {
		case t < fx.FlashFadeIn:
			st.Flash.Alpha = t / fx.FlashFadeIn
		case t < fx.FlashFadeIn+fx.FlashFadeOut:
			st.Flash.Alpha = 1 - (t-fx.FlashFadeIn)/fx.FlashFadeOut
		default:
			st.Flash = Flash{}
		}
	}

	if st.ScorePulse.Timer > 0 {
		st.ScorePulse.Timer = math.Max(0, st.ScorePulse.Timer-h)
		t := 1 - st.ScorePulse.Timer/fx.ScorePulse
		st.ScorePulse.Scale = 1 + 0.5*(1-t*t)
		if st.ScorePulse.Timer == 0 {
			st.ScorePulse.Scale = 1
		}
	}

	if st.LivesPulse > 0 {
		st.LivesPulse = math.Max(0, st.LivesPulse-h)
	}

	st.Entities.ageParticles()
}
