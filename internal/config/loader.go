package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration and validates it.
// Search order: customPath -> ~/.trex/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// A malformed obstacle table or collision-box table is a fatal configuration
// error reported here; the simulation never handles one at runtime.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				if err := Validate(cfg); err != nil {
					return cfg, fmt.Errorf("config: %s: %w", userCfgPath, err)
				}
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			if err := Validate(cfg); err != nil {
				return cfg, fmt.Errorf("config: configs/runner.yaml: %w", err)
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	if err := Validate(cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trex", "configs", filename)
}

// Validate checks structural invariants of a configuration.
// Violations are load-time errors, never recovered at runtime.
func Validate(cfg Config) error {
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %vx%v",
			cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Speed.Initial <= 0 {
		return fmt.Errorf("initial speed must be positive, got %v", cfg.Speed.Initial)
	}
	if cfg.Speed.Max < cfg.Speed.Initial {
		return fmt.Errorf("max speed %v below initial speed %v", cfg.Speed.Max, cfg.Speed.Initial)
	}
	if cfg.Speed.Acceleration < 0 {
		return fmt.Errorf("acceleration must not be negative, got %v", cfg.Speed.Acceleration)
	}
	if cfg.Trex.Width <= 0 || cfg.Trex.Height <= 0 {
		return fmt.Errorf("trex dimensions must be positive, got %vx%v",
			cfg.Trex.Width, cfg.Trex.Height)
	}
	if len(cfg.Trex.RunningBoxes) == 0 {
		return fmt.Errorf("trex has no running collision boxes")
	}
	if len(cfg.Trex.DuckingBoxes) == 0 {
		return fmt.Errorf("trex has no ducking collision boxes")
	}
	if err := validateBoxes("trex running", cfg.Trex.RunningBoxes); err != nil {
		return err
	}
	if err := validateBoxes("trex ducking", cfg.Trex.DuckingBoxes); err != nil {
		return err
	}

	if len(cfg.Obstacles.Types) == 0 {
		return fmt.Errorf("obstacle type table is empty")
	}
	if cfg.Obstacles.MaxGroupSize < 1 {
		return fmt.Errorf("max group size must be at least 1, got %d", cfg.Obstacles.MaxGroupSize)
	}
	seen := make(map[string]bool, len(cfg.Obstacles.Types))
	for _, t := range cfg.Obstacles.Types {
		if t.ID == "" {
			return fmt.Errorf("obstacle type with empty id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate obstacle type id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("obstacle type %q has non-positive dimensions %vx%v", t.ID, t.Width, t.Height)
		}
		if len(t.YPositions) == 0 {
			return fmt.Errorf("obstacle type %q has no y positions", t.ID)
		}
		if len(t.CollisionBoxes) == 0 {
			return fmt.Errorf("obstacle type %q has no collision boxes", t.ID)
		}
		if err := validateBoxes(t.ID, t.CollisionBoxes); err != nil {
			return err
		}
	}

	if cfg.Meter.Coefficient <= 0 {
		return fmt.Errorf("meter coefficient must be positive, got %v", cfg.Meter.Coefficient)
	}
	if cfg.Meter.Digits < 1 {
		return fmt.Errorf("meter digits must be at least 1, got %d", cfg.Meter.Digits)
	}

	return nil
}

func validateBoxes(owner string, boxes []BoxConfig) error {
	for i, b := range boxes {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%s collision box %d has non-positive size %vx%v", owner, i, b.W, b.H)
		}
		if b.X < 0 || b.Y < 0 {
			return fmt.Errorf("%s collision box %d has negative offset (%v, %v)", owner, i, b.X, b.Y)
		}
	}
	return nil
}
