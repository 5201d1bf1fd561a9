package grid

import "fmt"

// Kind is the tag of a Tile.
type Kind uint8

const (
	Floor Kind = iota
	Wall
	Food
	Snake
)

func (k Kind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Food:
		return "food"
	case Snake:
		return "snake"
	default:
		return "unknown"
	}
}

// Tile is the content of one grid cell.
//
// For Snake tiles Prev points toward the neighbouring segment closer to the
// tail and Next toward the one closer to the head. The tail has Prev == None,
// the head has Next == None, every interior segment has both set.
// Prev and Next are always None for the other kinds.
type Tile struct {
	Kind Kind
	Prev Direction
	Next Direction
}

// Common tiles.
var (
	FloorTile = Tile{Kind: Floor}
	WallTile  = Tile{Kind: Wall}
	FoodTile  = Tile{Kind: Food}
)

// SnakeTile builds a snake segment with the given links.
func SnakeTile(prev, next Direction) Tile {
	return Tile{Kind: Snake, Prev: prev, Next: next}
}

// IsSnake reports whether the tile holds a snake segment.
func (t Tile) IsSnake() bool { return t.Kind == Snake }

// Blocking reports whether entering the tile kills the snake.
func (t Tile) Blocking() bool { return t.Kind == Wall || t.Kind == Snake }

// IsHead reports whether t is the head segment.
func (t Tile) IsHead() bool { return t.Kind == Snake && t.Prev != None && t.Next == None }

// IsTail reports whether t is the tail segment.
func (t Tile) IsTail() bool { return t.Kind == Snake && t.Prev == None && t.Next != None }

func (t Tile) String() string {
	b, _ := t.MarshalText()
	return string(b)
}

// MarshalText encodes the tile as ".", "#", "*" or a two letter snake code
// such as "LR" (prev Left, next Right) or "-R" for the tail.
func (t Tile) MarshalText() ([]byte, error) {
	switch t.Kind {
	case Floor:
		return []byte{'.'}, nil
	case Wall:
		return []byte{'#'}, nil
	case Food:
		return []byte{'*'}, nil
	case Snake:
		return []byte{t.Prev.letter(), t.Next.letter()}, nil
	}
	return nil, fmt.Errorf("grid: cannot encode tile kind %d", t.Kind)
}

// UnmarshalText is the inverse of MarshalText.
func (t *Tile) UnmarshalText(b []byte) error {
	parsed, err := ParseTile(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTile decodes the text form produced by MarshalText.
func ParseTile(s string) (Tile, error) {
	switch s {
	case ".":
		return FloorTile, nil
	case "#":
		return WallTile, nil
	case "*":
		return FoodTile, nil
	}
	if len(s) == 2 {
		prev, okPrev := directionFromLetter(s[0])
		next, okNext := directionFromLetter(s[1])
		if okPrev && okNext && (prev != None || next != None) {
			return SnakeTile(prev, next), nil
		}
	}
	return Tile{}, fmt.Errorf("grid: invalid tile %q", s)
}
