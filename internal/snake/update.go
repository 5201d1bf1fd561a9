package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Steer queues a direction change. Presses between ticks are kept in order
// and each Tick consumes at most one of them.
func (g *GameState) Steer(d grid.Direction) {
	if !d.Valid() {
		return
	}
	if g.cfg.QueueLimit > 0 && len(g.queue) >= g.cfg.QueueLimit {
		return
	}
	g.queue = append(g.queue, d)
}

// Pending returns the number of queued direction presses.
func (g *GameState) Pending() int { return len(g.queue) }

// Tick advances the game by one step using the oldest queued direction.
func (g *GameState) Tick() Outcome {
	next := grid.None
	if len(g.queue) > 0 {
		next = g.queue[0]
		g.queue = g.queue[1:]
	}
	return g.Update(next)
}

// Update advances the game by one step. pending is the requested heading,
// or grid.None to keep the current one. A request for the exact reverse of
// the heading is ignored.
//
// While the snake is dead Update does nothing and returns OutcomeIdle.
func (g *GameState) Update(pending grid.Direction) Outcome {
	if !g.alive {
		return OutcomeIdle
	}

	if pending.Valid() && pending != g.heading.Reverse() {
		g.heading = pending
	}

	newHead := g.tiles.Step(g.head, g.heading)
	// The tail link is only meaningful on the unmodified board.
	newTail := g.tiles.Step(g.tail, g.nextLink(g.tail))

	eat := false
	switch g.tiles.At(newHead).Kind {
	case grid.Wall, grid.Snake:
		g.die()
		return OutcomeDied
	case grid.Food:
		eat = true
	}

	g.tiles.Set(g.head, grid.SnakeTile(g.prevLink(g.head), g.heading))
	g.tiles.Set(newHead, grid.SnakeTile(g.heading.Reverse(), grid.None))
	g.head = newHead

	if eat {
		g.score += FoodReward
		g.spawnFood()
		return OutcomeAte
	}

	g.tiles.Set(g.tail, grid.FloorTile)
	g.tiles.Set(newTail, grid.SnakeTile(grid.None, g.nextLink(newTail)))
	g.tail = newTail
	return OutcomeMoved
}

func (g *GameState) die() {
	g.alive = false
	if g.score > g.highscore {
		g.highscore = g.score
	}
}

// prevLink returns the prev link of the segment at i.
// A missing link means the board is corrupt.
func (g *GameState) prevLink(i grid.Index) grid.Direction {
	t := g.tiles.At(i)
	if t.Kind != grid.Snake || t.Prev == grid.None {
		panic(fmt.Sprintf("snake: expected segment with prev link at %v, found %q", i, t))
	}
	return t.Prev
}

// nextLink returns the next link of the segment at i.
func (g *GameState) nextLink(i grid.Index) grid.Direction {
	t := g.tiles.At(i)
	if t.Kind != grid.Snake || t.Next == grid.None {
		panic(fmt.Sprintf("snake: expected segment with next link at %v, found %q", i, t))
	}
	return t.Next
}
