// Package snake implements the snake game engine.
//
// The snake is not stored as a list of positions. Each body segment lives in
// a grid cell that records the direction toward its neighbours (see
// grid.Tile), so the path from tail to head is recovered by following links
// through the grid. Only the head and tail coordinates are cached.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// FoodReward is the number of points awarded per food eaten.
const FoodReward = 10

// Minimum level size. The snake starts at row 3 spanning columns 3..5, which
// needs one more interior column to its right and a row below it.
const (
	MinWidth  = 7
	MinHeight = 5
)

// Default level size in tiles.
const (
	DefaultWidth  = 40
	DefaultHeight = 30
)

var (
	startTail = grid.Index{Row: 3, Col: 3}
	startBody = grid.Index{Row: 3, Col: 4}
	startHead = grid.Index{Row: 3, Col: 5}
)

// ErrLevelTooSmall is returned when the requested level cannot hold the
// starting snake and a food tile.
var ErrLevelTooSmall = errors.New("snake: level too small")

// Config holds engine parameters that do not change during a game.
type Config struct {
	Width  int
	Height int

	// Seed for food placement. 0 means seed from the current time.
	Seed int64

	// QueueLimit caps the number of buffered direction presses.
	// 0 means unbounded.
	QueueLimit int

	// FoodAttempts is the number of random probes tried before falling back
	// to scanning every free cell. 0 means 4 * Width * Height.
	FoodAttempts int
}

// DefaultConfig returns a Config for the default level size.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks the level dimensions.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrLevelTooSmall, c.Width, c.Height, MinWidth, MinHeight)
	}
	if c.QueueLimit < 0 || c.FoodAttempts < 0 {
		return fmt.Errorf("snake: queue limit and food attempts must not be negative")
	}
	return nil
}

// Outcome describes what a single Update did.
type Outcome int

const (
	OutcomeIdle  Outcome = iota // snake already dead, nothing changed
	OutcomeMoved                // moved onto a floor tile
	OutcomeAte                  // moved onto food and grew
	OutcomeDied                 // collided with a wall or itself
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// GameState is the complete state of one game.
// It is owned by a single driver and is not safe for concurrent use.
type GameState struct {
	cfg Config
	rng *rand.Rand

	width  int
	height int
	tiles  *grid.Grid

	head    grid.Index
	tail    grid.Index
	heading grid.Direction

	alive     bool
	score     int
	highscore int
	boardFull bool

	queue []grid.Direction
}

// New creates a fresh game on a width x height level.
func New(width, height, highscore int) (*GameState, error) {
	return NewWithConfig(Config{Width: width, Height: height}, highscore)
}

// NewWithConfig creates a fresh game using cfg.
func NewWithConfig(cfg Config, highscore int) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newGame(cfg, highscore, rand.New(rand.NewSource(seed))), nil
}

// newGame builds the starting position. cfg must already be valid.
func newGame(cfg Config, highscore int, rng *rand.Rand) *GameState {
	tiles := grid.New(cfg.Width, cfg.Height)
	tiles.StampBorder()

	tiles.Set(startTail, grid.SnakeTile(grid.None, grid.Right))
	tiles.Set(startBody, grid.SnakeTile(grid.Left, grid.Right))
	tiles.Set(startHead, grid.SnakeTile(grid.Left, grid.None))

	g := &GameState{
		cfg:       cfg,
		rng:       rng,
		width:     cfg.Width,
		height:    cfg.Height,
		tiles:     tiles,
		head:      startHead,
		tail:      startTail,
		heading:   grid.Right,
		alive:     true,
		highscore: highscore,
	}
	g.spawnFood()
	return g
}

// Reset replaces the game with a new one of the same size.
// The high score is kept; score, board and pending input are discarded.
func (g *GameState) Reset() {
	*g = *newGame(g.cfg, g.highscore, g.rng)
}

// Tiles returns a read-only view of the board.
func (g *GameState) Tiles() grid.View { return grid.NewView(g.tiles) }

// SnakeAlive reports whether the game is still running.
func (g *GameState) SnakeAlive() bool { return g.alive }

// LevelSize returns the level width and height.
func (g *GameState) LevelSize() (int, int) { return g.width, g.height }

// Score returns the score of the current game.
func (g *GameState) Score() int { return g.score }

// Highscore returns the best score seen, updated when a game ends.
func (g *GameState) Highscore() int { return g.highscore }

// Heading returns the direction the head moves on the next tick.
func (g *GameState) Heading() grid.Direction { return g.heading }

// Head returns the head coordinate.
func (g *GameState) Head() grid.Index { return g.head }

// Tail returns the tail coordinate.
func (g *GameState) Tail() grid.Index { return g.tail }

// Len returns the number of segments.
func (g *GameState) Len() int { return g.tiles.Count(grid.Snake) }

// BoardFull reports whether the last food spawn found no free cell.
func (g *GameState) BoardFull() bool { return g.boardFull }

// Config returns the engine parameters.
func (g *GameState) Config() Config { return g.cfg }
