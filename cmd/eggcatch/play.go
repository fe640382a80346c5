package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/games/eggcatch"
	"github.com/vovakirdan/egg-catcher/internal/leaderboard"
	"github.com/vovakirdan/egg-catcher/internal/platform/tui"
	"github.com/vovakirdan/egg-catcher/internal/profile"
	"github.com/vovakirdan/egg-catcher/internal/sim"
	"github.com/vovakirdan/egg-catcher/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game on its menu. Type your name and press Enter to play.

Controls:
  Left/A, Right/D  - Move the basket (hold)
  Enter            - Start (menu)
  Tab              - Leaderboard (menu)
  R                - Restart (after game over)
  B/Esc            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Full lives, gentler gravity, rarer wind
  normal - Default tuning
  hard   - Two lives, heavier gravity, frequent wind
  fixed  - No progression and no focus mode

Examples:
  eggcatch play
  eggcatch play --difficulty easy
  eggcatch play --config ./my-eggcatch.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// unavailableBoard stands in when the scores database cannot be opened.
type unavailableBoard struct {
	err error
}

func (b unavailableBoard) SubmitScore(context.Context, string, int) error { return b.err }

func (b unavailableBoard) TopScores(context.Context, int) ([]leaderboard.Entry, error) {
	return nil, b.err
}

func runPlay(_ *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	// The terminal belongs to bubbletea, so logs go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, logErr := openLogFile(flagLogFile)
		if logErr != nil {
			return logErr
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	var backend leaderboard.Backend
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, playing offline", "err", err)
		backend = unavailableBoard{err: err}
	} else {
		defer store.Close()
		backend = storage.Board{Store: store}
	}
	board := leaderboard.NewClient(backend, logger)
	defer board.Close()

	profiles, err := profile.NewFile(flagProfile)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", seed, "difficulty", flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game := eggcatch.New(&tuning, sim.NewRandom(seed), board, profiles, logger)
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	})
}
