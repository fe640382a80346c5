// Package eggcatch implements the egg catcher screen flow on top of the
// simulation: Menu -> Playing -> GameOver -> Playing or Menu, and Menu <-> Leaderboard.
// Intents are consumed synchronously at the start of each tick.
package eggcatch

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/leaderboard"
	"github.com/vovakirdan/egg-catcher/internal/profile"
	"github.com/vovakirdan/egg-catcher/internal/sim"
)

// fetchTimeout bounds how long the leaderboard screen waits for a list.
const fetchTimeout = 10 * time.Second

// Screen is a state of the screen flow.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
	ScreenLeaderboard
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// ScoreBoard is the remote/local score store.
type ScoreBoard interface {
	Submit(name string, score int)
	FetchTop(ctx context.Context, n int) *leaderboard.Fetch
}

// ProfileStore persists the local player.
type ProfileStore interface {
	Load() (profile.Profile, error)
	Save(profile.Profile) error
}

// Input is everything the platform hands the game for one tick.
type Input struct {
	Frame core.InputFrame
	Name  string // Current contents of the name field, read on Confirm
}

// Frame reports what a tick did.
type Frame struct {
	Screen Screen
	Steps  int     // Physics steps run
	Alpha  float64 // Interpolation between the last two steps
	Quit   bool
}

// Result describes the run that just ended.
type Result struct {
	Name      string
	Score     int
	NewBest   bool
	Submitted bool
}

// Game drives one player's session.
type Game struct {
	cfg      *config.EggCatchConfig
	sim      *sim.Sim
	board    ScoreBoard
	profiles ProfileStore
	log      *log.Logger

	screen    Screen
	player    profile.Profile
	savedName string
	alpha     float64
	result    Result

	fetch       *leaderboard.Fetch
	cancelFetch context.CancelFunc
	entries     []leaderboard.Entry
	loading     bool
}

// New creates a game on the menu screen. The profile is loaded once here;
// a load failure is logged and the default profile used.
func New(cfg *config.EggCatchConfig, rng sim.RandomSource, board ScoreBoard, profiles ProfileStore, logger *log.Logger) *Game {
	p, err := profiles.Load()
	if err != nil {
		logger.Warn("profile load failed, using defaults", "err", err)
	}
	p = p.Normalize()

	g := &Game{
		cfg:       cfg,
		sim:       sim.New(cfg, rng),
		board:     board,
		profiles:  profiles,
		log:       logger,
		screen:    ScreenMenu,
		player:    p,
		savedName: p.Name,
	}
	g.sim.SetHighScore(p.HighScore)
	return g
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Player returns the local player profile.
func (g *Game) Player() profile.Profile {
	return g.player
}

// Result returns the last finished run.
func (g *Game) Result() Result {
	return g.result
}

// Leaderboard returns the entries to show and whether a fetch is still pending.
func (g *Game) Leaderboard() ([]leaderboard.Entry, bool) {
	return g.entries, g.loading
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() sim.State {
	return g.sim.Snapshot()
}

// Tick consumes this tick's intents, then runs the active screen.
func (g *Game) Tick(realDelta float64, in Input) Frame {
	if in.Frame.Has(core.ActionQuit) {
		g.Close()
		return Frame{Screen: g.screen, Quit: true}
	}

	frame := Frame{}
	switch g.screen {
	case ScreenMenu:
		switch {
		case in.Frame.Has(core.ActionConfirm):
			g.start(in.Name)
		case in.Frame.Has(core.ActionScoreboard):
			g.openLeaderboard()
		}

	case ScreenPlaying:
		step := sim.StepInput{
			Left:  in.Frame.Has(core.ActionLeft),
			Right: in.Frame.Has(core.ActionRight),
		}
		frame.Steps, g.alpha = g.sim.Advance(realDelta, step)
		if g.sim.State().GameOver {
			g.finish()
		}

	case ScreenGameOver:
		switch {
		case in.Frame.Has(core.ActionRestart):
			g.restart()
		case in.Frame.Has(core.ActionBack):
			g.screen = ScreenMenu
		}

	case ScreenLeaderboard:
		if in.Frame.Has(core.ActionBack) {
			g.closeLeaderboard()
			break
		}
		g.pollLeaderboard()
	}

	frame.Screen = g.screen
	frame.Alpha = g.alpha
	return frame
}

// start captures the typed name and begins a fresh run.
func (g *Game) start(name string) {
	if name != "" {
		g.player.Name = name
		g.player = g.player.Normalize()
	}
	g.log.Info("game started", "player", g.player.Name)
	g.restart()
}

func (g *Game) restart() {
	g.sim.Reset()
	g.sim.SetHighScore(g.player.HighScore)
	g.alpha = 0
	g.result = Result{}
	g.screen = ScreenPlaying
}

// finish runs the one-time game-over side effects.
func (g *Game) finish() {
	st := g.sim.State()
	g.screen = ScreenGameOver
	g.result = Result{Name: g.player.Name, Score: st.Score}

	if st.Score > g.player.HighScore {
		g.player.HighScore = st.Score
		g.result.NewBest = true
	}
	if g.result.NewBest || g.player.Name != g.savedName {
		if err := g.profiles.Save(g.player); err != nil {
			g.log.Warn("profile save failed", "err", err)
		} else {
			g.savedName = g.player.Name
		}
	}

	if st.Score > 0 {
		g.board.Submit(g.player.Name, st.Score)
		g.result.Submitted = true
	}

	g.log.Info("game over",
		"player", g.player.Name,
		"score", st.Score,
		"high", g.player.HighScore,
		"seconds", st.GlobalTime,
	)
}

func (g *Game) openLeaderboard() {
	g.cancelLeaderboard()
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	g.fetch = g.board.FetchTop(ctx, leaderboard.DefaultTop)
	g.cancelFetch = cancel
	g.loading = true
	g.screen = ScreenLeaderboard
	g.pollLeaderboard()
}

func (g *Game) pollLeaderboard() {
	if g.fetch == nil {
		return
	}
	entries, ok := g.fetch.Poll()
	if !ok {
		return
	}
	g.entries = leaderboard.Top(entries, leaderboard.DefaultTop)
	g.loading = false
	g.cancelLeaderboard()
}

// closeLeaderboard returns to the menu; a pending result is discarded.
func (g *Game) closeLeaderboard() {
	g.cancelLeaderboard()
	g.loading = false
	g.screen = ScreenMenu
}

func (g *Game) cancelLeaderboard() {
	if g.cancelFetch != nil {
		g.cancelFetch()
	}
	g.cancelFetch = nil
	g.fetch = nil
}

// Close releases a pending fetch.
func (g *Game) Close() {
	g.cancelLeaderboard()
}
