// Package config provides YAML-based configuration loading for the snake
// game and its terminal driver.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the game and its driver.
type SnakeConfig struct {
	Level  LevelConfig  `yaml:"level"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Food   FoodConfig   `yaml:"food"`
	App    AppConfig    `yaml:"app"`
}

// LevelConfig defines the arena size in tiles, walls included.
type LevelConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the driver cadence. The engine moves once every
// MoveEveryFrames rendered frames.
type TimingConfig struct {
	FPS             int `yaml:"fps"`
	MoveEveryFrames int `yaml:"move_every_frames"`
}

// InputConfig defines direction buffering.
type InputConfig struct {
	QueueLimit int `yaml:"queue_limit"` // 0 = unbounded
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = engine default
}

// AppConfig identifies the application for the state directory.
type AppConfig struct {
	Name   string `yaml:"name"`
	Author string `yaml:"author"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	if err := c.Engine(0).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Timing.FPS <= 0 || c.Timing.FPS > 240 {
		return fmt.Errorf("config: fps must be in 1..240, got %d", c.Timing.FPS)
	}
	if c.Timing.MoveEveryFrames <= 0 {
		return fmt.Errorf("config: move_every_frames must be positive, got %d", c.Timing.MoveEveryFrames)
	}
	if c.App.Name == "" {
		return fmt.Errorf("config: app name must not be empty")
	}
	return nil
}

// Engine returns the engine parameters for a game seeded with seed.
func (c SnakeConfig) Engine(seed int64) snake.Config {
	return snake.Config{
		Width:        c.Level.Width,
		Height:       c.Level.Height,
		Seed:         seed,
		QueueLimit:   c.Input.QueueLimit,
		FoodAttempts: c.Food.MaxAttempts,
	}
}
