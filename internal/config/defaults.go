package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Level: LevelConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
		},
		Timing: TimingConfig{
			FPS:             60,
			MoveEveryFrames: 10,
		},
		Input: InputConfig{
			QueueLimit: 0,
		},
		Food: FoodConfig{
			MaxAttempts: 0,
		},
		App: AppConfig{
			Name:   "snake",
			Author: "onasauri",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
