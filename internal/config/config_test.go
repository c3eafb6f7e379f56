package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}

	hard := DefaultInvadersConfig()
	if fromYAML != hard {
		t.Errorf("embedded defaults diverge from hardcoded defaults:\nyaml: %+v\nhard: %+v", fromYAML, hard)
	}
}

func TestLoadInvadersDefault(t *testing.T) {
	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	if cfg.Formation.Rows != 5 || cfg.Formation.Cols != 11 {
		t.Errorf("Expected 5x11 formation, got %dx%d", cfg.Formation.Rows, cfg.Formation.Cols)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("Expected 3 lives, got %d", cfg.Player.Lives)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	custom := `
playfield:
  width: 1000
  height: 700
  ground_y: 600
player:
  start_x: 500
  lives: 5
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	if cfg.Playfield.Width != 1000 {
		t.Errorf("Expected custom width 1000, got %v", cfg.Playfield.Width)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("Expected custom lives 5, got %d", cfg.Player.Lives)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestLoadInvadersMalformedCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("playfield: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	if _, err := LoadInvaders(path); err == nil {
		t.Error("Expected error for malformed custom config")
	}
}
