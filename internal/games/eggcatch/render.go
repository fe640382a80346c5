package eggcatch

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/sim"
)

// Visual characters for rendering
const (
	NormalEggChar     = '0'
	BadEggChar        = '@'
	BeneficialEggChar = '♥'
	CaughtChar        = 'o'
	FadedChar         = '.'
	SplatChar         = '*'
	DustChar          = '·'
	StreakChar        = '-'
	GroundChar        = '═'
	HeartFull         = '♥'
	HeartEmpty        = '♡'
)

// Minimum terminal size for the playfield
const (
	MinWidth  = 40
	MinHeight = 12
	hudRows   = 2
)

// viewport maps playfield cells onto screen cells.
// The field spans rows [top, ground) and the ground line sits on the last row.
type viewport struct {
	w, ground, top int
	cols, rows     float64
}

func newViewport(cfg *config.EggCatchConfig, w, h int) viewport {
	return viewport{
		w:      w,
		ground: h - 1,
		top:    hudRows,
		cols:   float64(cfg.Field.Cols),
		rows:   float64(cfg.Field.Rows),
	}
}

func (v viewport) x(fx float64) int {
	return core.Clamp(int(fx*float64(v.w)/v.cols), 0, v.w-1)
}

func (v viewport) y(fy float64) int {
	return core.Clamp(v.top+int(fy*float64(v.ground-v.top)/v.rows), v.top, v.ground-1)
}

func (v viewport) inField(fx, fy float64) bool {
	return fx >= 0 && fx < v.cols && fy >= 0 && fy < v.rows
}

// lerp blends the previous and current step by the interpolation alpha.
func lerp(prev, cur, alpha float64) float64 {
	return prev + (cur-prev)*alpha
}

// Render draws the playfield for the Playing and GameOver screens.
// Menu and leaderboard are drawn by the platform with its own widgets.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.screen != ScreenPlaying && g.screen != ScreenGameOver {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorDefault)
		return
	}

	st := g.sim.Snapshot()
	v := newViewport(g.cfg, w, h)
	alpha := g.alpha
	if g.screen == ScreenGameOver {
		alpha = 1
	}

	renderFlash(dst, st, w, h)
	renderWind(dst, v, st)
	renderEggs(dst, v, st, alpha)
	renderParticles(dst, v, st)
	renderBasket(dst, v, g.cfg, st, alpha)
	renderGround(dst, v, st)
	renderHUD(dst, g.cfg, st)

	if g.screen == ScreenGameOver {
		g.renderGameOver(dst)
	}
}

// renderFlash frames the field in the flash color while the overlay is visible.
func renderFlash(dst *core.Screen, st sim.State, w, h int) {
	if !st.Flash.Active || st.Flash.Alpha < 0.15 {
		return
	}
	dst.DrawBox(core.NewRect(0, 1, w, h-1), st.Flash.Color)
}

func renderWind(dst *core.Screen, v viewport, st sim.State) {
	for _, s := range st.Entities.Streaks {
		y := v.y(s.Y)
		x := v.x(s.X)
		head := '>'
		if s.Dir < 0 {
			head = '<'
		}
		for i := 0; i < s.Length; i++ {
			dst.SetColor(x-s.Dir*i, y, StreakChar, core.ColorGray)
		}
		if s.Alpha > 0.3 {
			dst.SetColor(x, y, head, core.ColorGray)
		}
	}
	for _, d := range st.Entities.Dust {
		if !v.inField(d.X, d.Y) {
			continue
		}
		r := DustChar
		if d.Alpha < 0.4 {
			r = FadedChar
		}
		dst.SetColor(v.x(d.X), v.y(d.Y), r, core.ColorGray)
	}
}

func eggChar(k sim.Kind) rune {
	switch k {
	case sim.KindNormal:
		return NormalEggChar
	case sim.KindBad:
		return BadEggChar
	case sim.KindBeneficial:
		return BeneficialEggChar
	default:
		return '?'
	}
}

func renderEggs(dst *core.Screen, v viewport, st sim.State, alpha float64) {
	for _, e := range st.Entities.Eggs {
		switch e.State {
		case sim.Falling:
			dst.SetColor(v.x(e.X), v.y(lerp(e.PrevY, e.Y, alpha)), eggChar(e.Kind), e.Tint)
		case sim.Caught:
			if e.Alpha <= 0 {
				continue
			}
			r := CaughtChar
			if e.Scale < 0.5 {
				r = FadedChar
			}
			dst.SetColor(v.x(e.X), v.y(e.Y), r, e.Tint)
		case sim.Splat:
			dst.SetColor(v.x(e.X), v.y(e.Y), SplatChar, e.Tint)
		}
	}
}

func renderParticles(dst *core.Screen, v viewport, st sim.State) {
	for _, p := range st.Entities.Particles {
		x, y := p.X.Float(), p.Y.Float()
		if !v.inField(x, y) {
			continue
		}
		r := SplatChar
		if p.Alpha < 128 {
			r = FadedChar
		}
		dst.SetColor(v.x(x), v.y(y), r, p.Tint)
	}
}

func renderBasket(dst *core.Screen, v viewport, cfg *config.EggCatchConfig, st sim.State, alpha float64) {
	b := st.Basket
	cx := lerp(b.PrevX, b.X, alpha)
	half := cfg.Basket.Width / 2
	left := v.x(cx - half)
	right := v.x(cx + half)
	if right-left < 2 {
		right = left + 2
	}
	y := v.y(b.Y)

	dst.SetColor(left, y, '\\', core.ColorBrown)
	dst.DrawHLine(left+1, y, right-left-1, '_', core.ColorBrown)
	dst.SetColor(right, y, '/', core.ColorBrown)
}

func renderGround(dst *core.Screen, v viewport, st sim.State) {
	c := core.ColorGreen
	if st.Flash.Active && st.Flash.Alpha >= 0.15 {
		c = st.Flash.Color
	}
	dst.DrawHLine(0, v.ground, v.w, GroundChar, c)
}

// renderHUD draws score, lives and best on row 0, focus and wind on row 1.
func renderHUD(dst *core.Screen, cfg *config.EggCatchConfig, st sim.State) {
	w := dst.Width()

	scoreColor := core.ColorGold
	if st.Focus {
		scoreColor = core.ColorBrightCyan
	}
	if st.ScorePulse.Scale > 1.2 {
		scoreColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", st.Score), scoreColor)

	livesColor := core.ColorPink
	if st.LivesPulse > 0 {
		livesColor = core.ColorBrightRed
	}
	hearts := strings.Repeat(string(HeartFull), st.Lives) +
		strings.Repeat(string(HeartEmpty), max(0, cfg.Lives.Max-st.Lives))
	dst.DrawTextCentered(0, "Lives "+hearts, livesColor)

	best := fmt.Sprintf("Best: %d", st.HighScore)
	dst.DrawTextColor(w-len(best)-1, 0, best, core.ColorSky)

	if st.Focus {
		dst.DrawTextCentered(1, fmt.Sprintf(" FOCUS MODE  x%d SCORE ", cfg.Scoring.FocusCatch), core.ColorBrightCyan)
	}
	if st.Wind.Visible(cfg.Wind.VisibleThreshold) {
		arrows := strings.Repeat(">", windArrows(st.Wind.Strength))
		label := " WIND " + arrows + " "
		if st.Wind.Strength < 0 {
			label = " " + strings.Repeat("<", windArrows(st.Wind.Strength)) + " WIND "
		}
		dst.DrawTextColor(1, 1, label, core.ColorGray)
	}
}

// windArrows grades gust strength into 1..3 arrows.
func windArrows(strength float64) int {
	return core.Clamp(int(math.Abs(strength)/3)+1, 1, 3)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []struct {
		text string
		c    core.Color
	}{
		{"GAME OVER", core.ColorBrightRed},
		{fmt.Sprintf("%s scored %d", g.result.Name, g.result.Score), core.ColorGold},
		{fmt.Sprintf("Best: %d", g.player.HighScore), core.ColorSky},
		{"[R] Restart   [B] Menu", core.ColorDefault},
	}
	if g.result.NewBest {
		lines[2].text = "New best!"
		lines[2].c = core.ColorBrightGreen
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l.text, l.c)
	}
}
