package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML NekoConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultNekoConfig()) {
		t.Errorf("embedded YAML and DefaultNekoConfig drifted:\nyaml: %+v\ncode: %+v", fromYAML, DefaultNekoConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultNekoConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultNekoConfig()
	cfg.Progression.InitialThreshold = 0
	cfg.Progression.GrowthFactor = 1
	cfg.Difficulty.Policy = "chaos"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"initial_threshold", "growth_factor", "chaos"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadNekoCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neko.yaml")
	data := []byte("player:\n  start_lives: 4\ncombo:\n  window: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNeko(path)
	if err != nil {
		t.Fatalf("LoadNeko() failed: %v", err)
	}
	if cfg.Player.StartLives != 4 {
		t.Errorf("StartLives = %d, expected 4", cfg.Player.StartLives)
	}
	if cfg.Combo.Window != 200 {
		t.Errorf("Combo.Window = %d, expected 200", cfg.Combo.Window)
	}
	// Untouched sections keep their defaults
	if cfg.Physics.Gravity != DefaultNekoConfig().Physics.Gravity {
		t.Errorf("Gravity = %v, expected default", cfg.Physics.Gravity)
	}
}

func TestLoadNekoCustomPathErrors(t *testing.T) {
	if _, err := LoadNeko(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("progression:\n  growth_factor: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNeko(path); err == nil {
		t.Error("expected validation error for growth_factor below 1")
	}
}

func TestApplyNekoPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		policy     string
		level      int
		startLives int
	}{
		{DifficultyEasy, PolicyScore, 0, 4},
		{DifficultyNormal, PolicyScore, 1, 3},
		{DifficultyHard, PolicyScore, 3, 2},
		{DifficultyFixed, PolicyFlat, 0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultNekoConfig()
			ApplyNekoPreset(&cfg, tc.preset)
			if cfg.Difficulty.Policy != tc.policy {
				t.Errorf("Policy = %q, expected %q", cfg.Difficulty.Policy, tc.policy)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %d, expected %d", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Player.StartLives != tc.startLives {
				t.Errorf("StartLives = %d, expected %d", cfg.Player.StartLives, tc.startLives)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}
