package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if fromYAML != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", fromYAML, DefaultSnakeConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("level:\n  width: 20\n  height: 15\ntiming:\n  move_every_frames: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Level.Width != 20 || cfg.Level.Height != 15 {
		t.Errorf("level = %dx%d, expected 20x15", cfg.Level.Width, cfg.Level.Height)
	}
	if cfg.Timing.MoveEveryFrames != 5 {
		t.Errorf("move_every_frames = %d, expected 5", cfg.Timing.MoveEveryFrames)
	}
	// Unset fields keep their defaults
	if cfg.Timing.FPS != 60 || cfg.App.Name != "snake" {
		t.Errorf("defaults not kept: fps=%d app=%q", cfg.Timing.FPS, cfg.App.Name)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	tests := []struct {
		name string
		data string
	}{
		{"malformed", "level: [1, 2"},
		{"level too small", "level:\n  width: 4\n  height: 4\n"},
		{"zero fps", "timing:\n  fps: 0\n"},
		{"negative queue", "input:\n  queue_limit: -1\n"},
		{"empty app name", "app:\n  name: \"\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := LoadSnake(path); err == nil {
				t.Errorf("LoadSnake() should reject %q", tc.data)
			}
		})
	}
}

func TestLoadSnakeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(LocalConfigPath, []byte("level:\n  width: 12\n  height: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Level.Width != 12 || cfg.Level.Height != 9 {
		t.Errorf("level = %dx%d, expected local 12x9", cfg.Level.Width, cfg.Level.Height)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Input.QueueLimit = 3
	cfg.Food.MaxAttempts = 50

	eng := cfg.Engine(99)
	want := snake.Config{Width: 40, Height: 30, Seed: 99, QueueLimit: 3, FoodAttempts: 50}
	if eng != want {
		t.Errorf("Engine() = %+v, expected %+v", eng, want)
	}

	cfg.Level.Width = 2
	if err := cfg.Validate(); !errors.Is(err, snake.ErrLevelTooSmall) {
		t.Errorf("Validate() = %v, expected ErrLevelTooSmall", err)
	}
}
