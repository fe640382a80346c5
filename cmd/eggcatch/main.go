// eggcatch is a terminal egg catching game.
//
// Usage:
//
//	eggcatch                 - Play (same as eggcatch play)
//	eggcatch play            - Play in this terminal
//	eggcatch scores          - Show the leaderboard or run history
//	eggcatch serve           - Start SSH server for remote play
//	eggcatch config          - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.eggcatch/scores.db)
//	--config <path>      - Load tuning from a YAML file
//	--difficulty <name>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagProfile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggcatch",
	Short: "Egg Catcher - catch falling eggs in your terminal",
	Long: `Egg Catcher is a terminal game: move the basket to catch falling eggs,
avoid the rotten ones, and grab hearts for extra lives. The pace rises with
your score, gusts of wind push eggs sideways, and every so often focus mode
speeds things up for bigger points.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the leaderboard or run history
  serve    - Start SSH server for remote play
  config   - Print the effective tuning

Examples:
  eggcatch
  eggcatch play --difficulty hard
  eggcatch scores --history
  eggcatch serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.eggcatch/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.eggcatch/eggcatch.log", "Log file for interactive play")
	pf.StringVar(&flagProfile, "profile", "~/.eggcatch/profile.yaml", "Path to the local player profile")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadTuning resolves the tuning from --config and applies --difficulty.
func loadTuning() (config.EggCatchConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.EggCatchConfig{}, err
	}
	cfg, err := config.LoadEggCatch(flagConfig)
	if err != nil {
		return config.EggCatchConfig{}, err
	}
	config.ApplyEggCatchPreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns the structured logger used by every component.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggcatch",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
