package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultArenaConfig() {
		t.Errorf("embedded defaults differ from DefaultArenaConfig():\n%+v\n%+v", cfg, DefaultArenaConfig())
	}
}

func TestArenaBounds(t *testing.T) {
	a := DefaultArenaConfig().Arena
	if a.MinY() != 120 || a.MaxY() != 610 {
		t.Errorf("playable y range = [%v, %v], expected [120, 610]", a.MinY(), a.MaxY())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("player:\n  max_lives: 3\nround:\n  time_seconds: 30\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Player.MaxLives != 3 {
		t.Errorf("MaxLives = %d, expected 3", cfg.Player.MaxLives)
	}
	if cfg.Round.TimeSeconds != 30 {
		t.Errorf("TimeSeconds = %v, expected 30", cfg.Round.TimeSeconds)
	}
	// Untouched values keep defaults
	if cfg.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("Speed = %v, expected default %v", cfg.Player.Speed, DefaultPlayerSpeed)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArenaConfig)
		code   string
	}{
		{"zero width", func(c *ArenaConfig) { c.Arena.Width = 0 }, "BAD_ARENA"},
		{"hud too tall", func(c *ArenaConfig) { c.Arena.TopHUD = 600 }, "BAD_ARENA"},
		{"no lives", func(c *ArenaConfig) { c.Player.MaxLives = 0 }, "BAD_LIVES"},
		{"negative cooldown", func(c *ArenaConfig) { c.Player.HitCooldown = -1 }, "BAD_DURATION"},
		{"zero round", func(c *ArenaConfig) { c.Round.TimeSeconds = 0 }, "BAD_DURATION"},
		{"zero speed", func(c *ArenaConfig) { c.Player.Speed = 0 }, "BAD_SPEED"},
		{"negative separation", func(c *ArenaConfig) { c.Placement.MinSeparation = -2 }, "BAD_SEPARATION"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}

	if err := DefaultArenaConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  collectible_points: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scoring.CollectiblePoints != 10 {
		t.Errorf("CollectiblePoints = %d, expected 10", cfg.Scoring.CollectiblePoints)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}
