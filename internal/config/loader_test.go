package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Default() must validate, got: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Speed.Initial != def.Speed.Initial || cfg.Speed.Max != def.Speed.Max {
		t.Errorf("embedded speed config %+v differs from hardcoded %+v", cfg.Speed, def.Speed)
	}
	if len(cfg.Obstacles.Types) != len(def.Obstacles.Types) {
		t.Errorf("embedded type table has %d types, hardcoded %d",
			len(cfg.Obstacles.Types), len(def.Obstacles.Types))
	}
	if cfg.Trex.Gravity != def.Trex.Gravity {
		t.Errorf("embedded gravity %v differs from hardcoded %v", cfg.Trex.Gravity, def.Trex.Gravity)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")

	data, err := os.ReadFile("defaults/runner.yaml")
	if err != nil {
		t.Fatalf("cannot read default yaml: %v", err)
	}
	modified := strings.Replace(string(data), "initial: 6", "initial: 8", 1)
	if err := os.WriteFile(path, []byte(modified), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Speed.Initial != 8 {
		t.Errorf("custom config not applied, initial speed = %v", cfg.Speed.Initial)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load of a missing custom path should fail")
	}
}

func TestValidateRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty type table", func(c *Config) { c.Obstacles.Types = nil }},
		{"empty type id", func(c *Config) { c.Obstacles.Types[0].ID = "" }},
		{"duplicate type id", func(c *Config) { c.Obstacles.Types[1].ID = c.Obstacles.Types[0].ID }},
		{"type without collision boxes", func(c *Config) { c.Obstacles.Types[0].CollisionBoxes = nil }},
		{"type without y positions", func(c *Config) { c.Obstacles.Types[0].YPositions = nil }},
		{"zero-size collision box", func(c *Config) { c.Obstacles.Types[0].CollisionBoxes[0].W = 0 }},
		{"negative box offset", func(c *Config) { c.Trex.RunningBoxes[0].X = -1 }},
		{"no running boxes", func(c *Config) { c.Trex.RunningBoxes = nil }},
		{"no ducking boxes", func(c *Config) { c.Trex.DuckingBoxes = nil }},
		{"zero viewport", func(c *Config) { c.Viewport.Width = 0 }},
		{"max speed below initial", func(c *Config) { c.Speed.Max = c.Speed.Initial - 1 }},
		{"negative acceleration", func(c *Config) { c.Speed.Acceleration = -1 }},
		{"zero group size", func(c *Config) { c.Obstacles.MaxGroupSize = 0 }},
		{"zero meter coefficient", func(c *Config) { c.Meter.Coefficient = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate should reject the malformed config")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Acceleration != 0 || fixed.Speed.BoostAt != 0 {
		t.Error("fixed preset should disable progression")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.Initial <= base.Speed.Initial {
		t.Error("hard preset should raise initial speed")
	}

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speed.Acceleration >= base.Speed.Acceleration {
		t.Error("easy preset should lower acceleration")
	}
}
