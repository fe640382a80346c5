package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/egg-catcher/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning",
	Long: `Print the tuning the game would use, after --config and --difficulty.
With --defaults, print the built-in file as a starting point for your own.

Examples:
  eggcatch config
  eggcatch config --difficulty hard
  eggcatch config --defaults > ~/.eggcatch/configs/eggcatch.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(tuning)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
