package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const eggCatchFile = "eggcatch.yaml"

// LoadEggCatch loads the egg catcher configuration.
// Search order: customPath -> ~/.eggcatch/configs/eggcatch.yaml -> ./configs/eggcatch.yaml -> embedded default.
// Files overlay the defaults, so a partial file only changes the keys it names.
func LoadEggCatch(customPath string) (EggCatchConfig, error) {
	cfg := embeddedEggCatch()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(eggCatchFile), filepath.Join("configs", eggCatchFile)} {
		if path == "" {
			continue
		}
		if overlay, ok := tryOverlay(cfg, path); ok {
			return overlay, nil
		}
	}

	return cfg, nil
}

// embeddedEggCatch parses the embedded default YAML.
func embeddedEggCatch() EggCatchConfig {
	cfg := DefaultEggCatchConfig()
	if err := yaml.Unmarshal(defaultEggCatchYAML, &cfg); err != nil {
		return DefaultEggCatchConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// tryOverlay applies the file at path on top of base.
// Unreadable, unparsable or invalid files are skipped.
func tryOverlay(base EggCatchConfig, path string) (EggCatchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	cfg.Spawn.ColumnOffsets = append([]int(nil), base.Spawn.ColumnOffsets...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggcatch", "configs", filename)
}

// ApplyEggCatchPreset modifies the config based on a difficulty preset.
func ApplyEggCatchPreset(cfg *EggCatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Start = cfg.Lives.Max
		cfg.Difficulty.BaseGravity *= 0.8
		cfg.Wind.Cooldown *= 1.5
	case DifficultyHard:
		cfg.Lives.Start = 2
		cfg.Difficulty.BaseGravity *= 1.2
		cfg.Wind.Cooldown *= 0.6
	case DifficultyFixed:
		// Score never changes the pace
		cfg.Difficulty.GravityPerPoint = 0
		cfg.Difficulty.SpawnIntervalPerPoint = 0
		cfg.Spawn.EdgeCooldownPerPoint = 0
		cfg.Focus.Enabled = false
	}
	if cfg.Lives.Start > cfg.Lives.Max {
		cfg.Lives.Start = cfg.Lives.Max
	}
}
