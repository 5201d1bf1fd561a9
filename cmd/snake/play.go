package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// stateKey names the saved game of local play.
const stateKey = "state"

var (
	flagFresh   bool
	flagLogFile string
)

func init() {
	rootCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore the saved game and start a new one")
	rootCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	states, err := storage.OpenAppStore(storage.AppInfo{Name: cfg.App.Name, Author: cfg.App.Author})
	if err != nil {
		return err
	}

	engine := cfg.Engine(seed())
	var game *snake.GameState
	if flagFresh {
		game, err = snake.NewWithConfig(engine, 0)
		if err != nil {
			return err
		}
	} else {
		game = storage.LoadGame(states, stateKey, engine, logger)
	}

	// Score history is optional; the game works without it.
	scores, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer scores.Close()
	}

	opts := tui.Options{
		FPS:       cfg.Timing.FPS,
		MoveEvery: cfg.Timing.MoveEveryFrames,
		Player:    "local",
	}
	if scores != nil {
		opts.Scores = scores
	}
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		opts.Width, opts.Height = w, h
	}

	if flagLogFile != "" {
		f, logErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if logErr != nil {
			return fmt.Errorf("cannot open log file: %w", logErr)
		}
		defer f.Close()
		opts.Logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "snake",
		})
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if err := storage.SaveGame(states, stateKey, game); err != nil {
		return fmt.Errorf("could not save game: %w", err)
	}
	logger.Debug("saved game", "path", states.Path(stateKey))
	return nil
}
