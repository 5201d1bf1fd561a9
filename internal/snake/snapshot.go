package snake

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// SnapshotVersion is the current snapshot format.
const SnapshotVersion = 1

// ErrCorruptSnapshot wraps every reason a snapshot cannot be restored.
var ErrCorruptSnapshot = errors.New("snake: corrupt snapshot")

// Cell is a grid coordinate in snapshot form.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Snapshot captures everything needed to continue a game later.
// Pending input and the RNG position are not part of it.
type Snapshot struct {
	Version   int      `yaml:"version"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Tiles     []string `yaml:"tiles"`
	Head      Cell     `yaml:"head"`
	Tail      Cell     `yaml:"tail"`
	Heading   string   `yaml:"heading"`
	Alive     bool     `yaml:"alive"`
	Score     int      `yaml:"score"`
	Highscore int      `yaml:"highscore"`
}

// Snapshot returns the persistable form of the game.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Version:   SnapshotVersion,
		Width:     g.width,
		Height:    g.height,
		Tiles:     g.tiles.Rows(),
		Head:      Cell{Row: g.head.Row, Col: g.head.Col},
		Tail:      Cell{Row: g.tail.Row, Col: g.tail.Col},
		Heading:   g.heading.String(),
		Alive:     g.alive,
		Score:     g.score,
		Highscore: g.highscore,
	}
}

// Restore rebuilds a game from a snapshot. The level size comes from the
// snapshot; the remaining engine parameters come from cfg.
// The rebuilt board is validated before it is returned.
func Restore(s Snapshot, cfg Config) (*GameState, error) {
	g, err := restore(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return g, nil
}

func restore(s Snapshot, cfg Config) (*GameState, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported version %d", s.Version)
	}
	cfg.Width, cfg.Height = s.Width, s.Height
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tiles, err := grid.ParseRows(s.Tiles)
	if err != nil {
		return nil, err
	}
	if tiles.Width() != s.Width || tiles.Height() != s.Height {
		return nil, fmt.Errorf("tiles are %dx%d, header says %dx%d", tiles.Width(), tiles.Height(), s.Width, s.Height)
	}

	heading, ok := grid.ParseDirection(s.Heading)
	if !ok {
		return nil, fmt.Errorf("unknown heading %q", s.Heading)
	}
	if s.Score < 0 || s.Highscore < 0 {
		return nil, fmt.Errorf("negative score")
	}

	head := grid.Index{Row: s.Head.Row, Col: s.Head.Col}
	tail := grid.Index{Row: s.Tail.Row, Col: s.Tail.Col}
	if !tiles.InBounds(head) || !tiles.InBounds(tail) {
		return nil, fmt.Errorf("head %v or tail %v outside the board", head, tail)
	}

	g, err := NewWithConfig(cfg, s.Highscore)
	if err != nil {
		return nil, err
	}
	g.tiles = tiles
	g.head = head
	g.tail = tail
	g.heading = heading
	g.alive = s.Alive
	g.score = s.Score
	g.boardFull = tiles.Count(grid.Floor) == 0 && tiles.Count(grid.Food) == 0

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Marshal encodes the game snapshot as YAML.
func Marshal(g *GameState) ([]byte, error) {
	data, err := yaml.Marshal(g.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("snake: encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a YAML snapshot and restores the game.
func Unmarshal(data []byte, cfg Config) (*GameState, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return Restore(s, cfg)
}
