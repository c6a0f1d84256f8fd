package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StageCount is the number of life stages a config must define.
const StageCount = 5

// LoadGame loads the game configuration.
// Search order: customPath -> ~/.agewalk/configs/game.yaml -> ./configs/game.yaml -> embedded default
func LoadGame(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("game.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/game.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so a file only needs to name the
// values it changes, then validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation cannot run without.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid grid dimensions: %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid tile size: %d", c.Grid.TileSize))
	}
	if len(c.Stages) != StageCount {
		errs = append(errs, fmt.Errorf("expected %d stages, got %d", StageCount, len(c.Stages)))
	}
	for i, s := range c.Stages {
		if s.Duration <= 0 {
			errs = append(errs, fmt.Errorf("stage %d (%s): duration must be positive", i, s.Name))
		}
		if s.BoxHeight <= 0 {
			errs = append(errs, fmt.Errorf("stage %d (%s): box height must be positive", i, s.Name))
		}
	}
	if c.Player.BoxWidth <= 0 {
		errs = append(errs, fmt.Errorf("invalid collision box width: %v", c.Player.BoxWidth))
	}
	if c.Editor.BrushSize <= 0 || c.Editor.BrushSize%2 == 0 {
		errs = append(errs, fmt.Errorf("brush size must be a positive odd number, got %d", c.Editor.BrushSize))
	}
	if c.Animation.WalkEnd < c.Animation.WalkStart {
		errs = append(errs, fmt.Errorf("walk_end %d before walk_start %d", c.Animation.WalkEnd, c.Animation.WalkStart))
	}
	if c.Animation.DeathDuration <= 0 {
		errs = append(errs, errors.New("death duration must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".agewalk", "configs", filename)
}
