package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Validate walks the board and checks that it describes a single unbroken
// snake whose ends match the cached head and tail, that the border is
// intact and that there is at most one food tile (exactly one while the
// game runs and the board is not full).
func (g *GameState) Validate() error {
	if g.tiles.Width() != g.width || g.tiles.Height() != g.height {
		return fmt.Errorf("board is %dx%d, expected %dx%d", g.tiles.Width(), g.tiles.Height(), g.width, g.height)
	}
	if !g.heading.Valid() {
		return fmt.Errorf("invalid heading %v", g.heading)
	}

	var heads, tails []grid.Index
	segments, food := 0, 0
	for idx, t := range g.tiles.All() {
		if g.tiles.IsBorder(idx) && t.Kind != grid.Wall {
			return fmt.Errorf("border cell %v is %v", idx, t.Kind)
		}
		switch t.Kind {
		case grid.Snake:
			segments++
			switch {
			case t.Prev == grid.None && t.Next == grid.None:
				return fmt.Errorf("segment %v has no links", idx)
			case t.Next == grid.None:
				heads = append(heads, idx)
			case t.Prev == grid.None:
				tails = append(tails, idx)
			}
		case grid.Food:
			food++
			fallthrough
		default:
			if t.Prev != grid.None || t.Next != grid.None {
				return fmt.Errorf("non-snake cell %v carries links", idx)
			}
		}
	}

	if len(heads) != 1 || len(tails) != 1 {
		return fmt.Errorf("found %d heads and %d tails, expected one of each", len(heads), len(tails))
	}
	if heads[0] != g.head {
		return fmt.Errorf("head is at %v but cached as %v", heads[0], g.head)
	}
	if tails[0] != g.tail {
		return fmt.Errorf("tail is at %v but cached as %v", tails[0], g.tail)
	}

	if err := g.walk(g.tail, g.head, segments, func(t grid.Tile) (grid.Direction, grid.Direction) {
		return t.Next, t.Prev
	}); err != nil {
		return fmt.Errorf("tail to head: %w", err)
	}
	if err := g.walk(g.head, g.tail, segments, func(t grid.Tile) (grid.Direction, grid.Direction) {
		return t.Prev, t.Next
	}); err != nil {
		return fmt.Errorf("head to tail: %w", err)
	}

	if food > 1 {
		return fmt.Errorf("found %d food tiles", food)
	}
	if food == 0 && g.alive && !g.boardFull {
		return fmt.Errorf("no food on the board")
	}
	return nil
}

// walk follows links from start and checks that it reaches end after
// visiting exactly n segments. links returns the outgoing link of a tile and
// the link its successor must point back with.
func (g *GameState) walk(start, end grid.Index, n int, links func(grid.Tile) (grid.Direction, grid.Direction)) error {
	cur := start
	for visited := 1; ; visited++ {
		if cur == end {
			if visited != n {
				return fmt.Errorf("reached %v after %d of %d segments", end, visited, n)
			}
			return nil
		}
		if visited >= n {
			return fmt.Errorf("did not reach %v within %d segments", end, n)
		}
		out, _ := links(g.tiles.At(cur))
		next := g.tiles.Step(cur, out)
		t := g.tiles.At(next)
		if t.Kind != grid.Snake {
			return fmt.Errorf("link %v from %v leads to %v", out, cur, t.Kind)
		}
		if _, back := links(t); back != out.Reverse() {
			return fmt.Errorf("segment %v does not link back to %v", next, cur)
		}
		cur = next
	}
}
