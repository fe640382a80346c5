package eggcatch

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-catcher/internal/config"
	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/leaderboard"
	"github.com/vovakirdan/egg-catcher/internal/profile"
	"github.com/vovakirdan/egg-catcher/internal/sim"
)

type submit struct {
	name  string
	score int
}

// fakeBoard records submits and hands out the configured fetch.
type fakeBoard struct {
	submits []submit
	fetch   *leaderboard.Fetch
	ctx     context.Context
}

func (b *fakeBoard) Submit(name string, score int) {
	b.submits = append(b.submits, submit{name, score})
}

func (b *fakeBoard) FetchTop(ctx context.Context, _ int) *leaderboard.Fetch {
	b.ctx = ctx
	if b.fetch == nil {
		return leaderboard.Resolved(nil)
	}
	return b.fetch
}

// blockingBackend holds TopScores until released or canceled.
type blockingBackend struct {
	release chan struct{}
	entries []leaderboard.Entry
}

func (b *blockingBackend) SubmitScore(context.Context, string, int) error { return nil }

func (b *blockingBackend) TopScores(ctx context.Context, _ int) ([]leaderboard.Entry, error) {
	select {
	case <-b.release:
		return b.entries, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type failingProfiles struct {
	saves int
}

func (p *failingProfiles) Load() (profile.Profile, error) {
	return profile.Profile{}, errors.New("disk on fire")
}

func (p *failingProfiles) Save(profile.Profile) error {
	p.saves++
	return errors.New("disk on fire")
}

func newTestGame(t *testing.T, board ScoreBoard, profiles ProfileStore) *Game {
	t.Helper()
	cfg := config.DefaultEggCatchConfig()
	return New(&cfg, sim.NewRandom(1), board, profiles, log.New(io.Discard))
}

func intent(actions ...core.Action) Input {
	var in Input
	for _, a := range actions {
		in.Frame.Set(a)
	}
	return in
}

// endRun forces the running simulation into game over with the given score.
func endRun(g *Game, score int) Frame {
	st := g.sim.State()
	st.Score = score
	st.Lives = 0
	st.GameOver = true
	return g.Tick(1.0/60, Input{})
}

func TestNewLoadsProfile(t *testing.T) {
	store := profile.NewMemory(profile.Profile{Name: "ann", HighScore: 33})
	g := newTestGame(t, &fakeBoard{}, store)

	if g.Screen() != ScreenMenu {
		t.Errorf("expected menu, got %v", g.Screen())
	}
	if g.Player().Name != "ann" {
		t.Errorf("expected player ann, got %q", g.Player().Name)
	}
	if got := g.Snapshot().HighScore; got != 33 {
		t.Errorf("expected high score seeded to 33, got %d", got)
	}
}

func TestNewFallsBackOnProfileError(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, &failingProfiles{})
	if g.Player() != profile.Default() {
		t.Errorf("expected default profile, got %+v", g.Player())
	}
}

func TestConfirmStartsRun(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))

	in := intent(core.ActionConfirm)
	in.Name = "  bob "
	f := g.Tick(1.0/60, in)

	if f.Screen != ScreenPlaying {
		t.Fatalf("expected playing, got %v", f.Screen)
	}
	if g.Player().Name != "bob" {
		t.Errorf("expected trimmed name bob, got %q", g.Player().Name)
	}
	if f.Steps != 0 {
		t.Errorf("the confirming tick should not step physics, got %d steps", f.Steps)
	}
}

func TestEmptyNameKeepsProfileName(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Profile{Name: "cy"}))
	g.Tick(1.0/60, intent(core.ActionConfirm))
	if g.Player().Name != "cy" {
		t.Errorf("expected cy, got %q", g.Player().Name)
	}
}

func TestPlayingAdvancesSimulation(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))
	g.Tick(1.0/60, intent(core.ActionConfirm))

	startX := g.Snapshot().Basket.X
	f := g.Tick(0.05, intent(core.ActionLeft))
	if f.Steps < 5 || f.Steps > 6 {
		t.Errorf("expected about 6 steps for a 50ms frame, got %d", f.Steps)
	}
	if got := g.Snapshot().Basket.X; got >= startX {
		t.Errorf("holding left should move the basket left: %v -> %v", startX, got)
	}
	if f.Alpha < 0 || f.Alpha >= 1 {
		t.Errorf("alpha out of range: %v", f.Alpha)
	}
}

func TestGameOverSubmitsAndSaves(t *testing.T) {
	board := &fakeBoard{}
	store := profile.NewMemory(profile.Profile{Name: "ann", HighScore: 10})
	g := newTestGame(t, board, store)
	g.Tick(1.0/60, intent(core.ActionConfirm))

	f := endRun(g, 24)
	if f.Screen != ScreenGameOver {
		t.Fatalf("expected game over, got %v", f.Screen)
	}

	res := g.Result()
	if res.Score != 24 || !res.NewBest || !res.Submitted || res.Name != "ann" {
		t.Errorf("unexpected result %+v", res)
	}
	if len(board.submits) != 1 || board.submits[0] != (submit{"ann", 24}) {
		t.Errorf("expected one submit ann/24, got %v", board.submits)
	}
	saved, _ := store.Load()
	if saved.HighScore != 24 {
		t.Errorf("expected saved high score 24, got %d", saved.HighScore)
	}

	// Game over is terminal until an intent arrives; no second submit.
	g.Tick(1.0/60, Input{})
	if len(board.submits) != 1 {
		t.Errorf("game over side effects ran twice: %v", board.submits)
	}
}

func TestZeroScoreNotSubmitted(t *testing.T) {
	board := &fakeBoard{}
	g := newTestGame(t, board, profile.NewMemory(profile.Default()))
	g.Tick(1.0/60, intent(core.ActionConfirm))
	endRun(g, 0)

	if len(board.submits) != 0 {
		t.Errorf("expected no submit for a zero score, got %v", board.submits)
	}
	if g.Result().Submitted || g.Result().NewBest {
		t.Errorf("unexpected result %+v", g.Result())
	}
}

func TestLowerScoreKeepsBest(t *testing.T) {
	store := profile.NewMemory(profile.Profile{Name: "ann", HighScore: 50})
	g := newTestGame(t, &fakeBoard{}, store)
	g.Tick(1.0/60, intent(core.ActionConfirm))
	endRun(g, 20)

	if g.Result().NewBest {
		t.Error("20 should not beat 50")
	}
	if g.Player().HighScore != 50 {
		t.Errorf("expected best to stay 50, got %d", g.Player().HighScore)
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	board := &fakeBoard{}
	store := &failingProfiles{}
	g := newTestGame(t, board, store)
	g.Tick(1.0/60, intent(core.ActionConfirm))
	endRun(g, 8)

	if store.saves != 1 {
		t.Errorf("expected one save attempt, got %d", store.saves)
	}
	if g.Screen() != ScreenGameOver || len(board.submits) != 1 {
		t.Errorf("game over should proceed after a save failure")
	}
}

func TestGameOverTransitions(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   Screen
	}{
		{"restart", core.ActionRestart, ScreenPlaying},
		{"back", core.ActionBack, ScreenMenu},
		{"ignored", core.ActionLeft, ScreenGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))
			g.Tick(1.0/60, intent(core.ActionConfirm))
			endRun(g, 4)

			if f := g.Tick(1.0/60, intent(tt.action)); f.Screen != tt.want {
				t.Errorf("expected %v, got %v", tt.want, f.Screen)
			}
		})
	}
}

func TestRestartResetsRunKeepsBest(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))
	g.Tick(1.0/60, intent(core.ActionConfirm))
	endRun(g, 14)
	g.Tick(1.0/60, intent(core.ActionRestart))

	st := g.Snapshot()
	if st.Score != 0 || st.Lives != 3 || st.GameOver {
		t.Errorf("restart should reset the run, got score %d lives %d over %v", st.Score, st.Lives, st.GameOver)
	}
	if st.HighScore != 14 {
		t.Errorf("expected high score 14 to survive restart, got %d", st.HighScore)
	}
	if g.Result() != (Result{}) {
		t.Errorf("expected result cleared, got %+v", g.Result())
	}
}

func TestLeaderboardResolved(t *testing.T) {
	board := &fakeBoard{fetch: leaderboard.Resolved([]leaderboard.Entry{
		{Name: "b", Score: 5},
		{Name: "a", Score: 9},
	})}
	g := newTestGame(t, board, profile.NewMemory(profile.Default()))

	f := g.Tick(1.0/60, intent(core.ActionScoreboard))
	if f.Screen != ScreenLeaderboard {
		t.Fatalf("expected leaderboard, got %v", f.Screen)
	}
	entries, loading := g.Leaderboard()
	if loading {
		t.Error("a resolved fetch should not be loading")
	}
	if len(entries) != 2 || entries[0].Name != "a" {
		t.Errorf("expected sorted entries, got %v", entries)
	}
	if board.ctx == nil || board.ctx.Err() == nil {
		t.Error("fetch context should be released once the list arrives")
	}
}

func TestLeaderboardLoadingThenArrives(t *testing.T) {
	backend := &blockingBackend{
		release: make(chan struct{}),
		entries: []leaderboard.Entry{{Name: "ann", Score: 12}},
	}
	client := leaderboard.NewClient(backend, log.New(io.Discard))
	defer client.Close()

	g := newTestGame(t, client, profile.NewMemory(profile.Default()))
	g.Tick(1.0/60, intent(core.ActionScoreboard))

	if _, loading := g.Leaderboard(); !loading {
		t.Fatal("expected loading while the backend is blocked")
	}
	fetch := g.fetch
	close(backend.release)
	select {
	case <-fetch.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not complete")
	}

	g.Tick(1.0/60, Input{})
	entries, loading := g.Leaderboard()
	if loading || len(entries) != 1 || entries[0].Name != "ann" {
		t.Errorf("expected ann after the fetch, got %v loading=%v", entries, loading)
	}
}

func TestLeaderboardBackCancelsFetch(t *testing.T) {
	backend := &blockingBackend{release: make(chan struct{})}
	client := leaderboard.NewClient(backend, log.New(io.Discard))
	defer client.Close()

	g := newTestGame(t, client, profile.NewMemory(profile.Default()))
	g.Tick(1.0/60, intent(core.ActionScoreboard))
	fetch := g.fetch

	f := g.Tick(1.0/60, intent(core.ActionBack))
	if f.Screen != ScreenMenu {
		t.Fatalf("expected menu, got %v", f.Screen)
	}
	if _, loading := g.Leaderboard(); loading {
		t.Error("leaving the screen should stop loading")
	}
	select {
	case <-fetch.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("canceled fetch did not resolve")
	}
}

func TestQuitFromAnyScreen(t *testing.T) {
	for _, setup := range []core.Action{core.ActionNone, core.ActionConfirm, core.ActionScoreboard} {
		g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))
		if setup != core.ActionNone {
			g.Tick(1.0/60, intent(setup))
		}
		if f := g.Tick(1.0/60, intent(core.ActionQuit)); !f.Quit {
			t.Errorf("expected quit from %v", g.Screen())
		}
	}
}

func TestMenuIgnoresMovement(t *testing.T) {
	g := newTestGame(t, &fakeBoard{}, profile.NewMemory(profile.Default()))
	f := g.Tick(1.0/60, intent(core.ActionLeft, core.ActionRestart))
	if f.Screen != ScreenMenu || f.Steps != 0 {
		t.Errorf("menu should ignore movement, got %v with %d steps", f.Screen, f.Steps)
	}
}
