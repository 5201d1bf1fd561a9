package snake

import "github.com/vovakirdan/tui-snake/internal/grid"

// spawnFood turns a uniformly chosen free floor cell into food.
//
// Random probes are cheap while the board is mostly empty; once the snake
// covers most of it the probes give up and every free cell is collected
// instead, so the choice stays uniform and the call always terminates.
// It reports false, and marks the board full, when no floor is left.
func (g *GameState) spawnFood() bool {
	attempts := g.cfg.FoodAttempts
	if attempts == 0 {
		attempts = 4 * g.width * g.height
	}

	for range attempts {
		idx := grid.Index{
			Row: 1 + g.rng.Intn(g.height-2),
			Col: 1 + g.rng.Intn(g.width-2),
		}
		if g.tiles.At(idx).Kind == grid.Floor {
			g.tiles.Set(idx, grid.FoodTile)
			return true
		}
	}

	var free []grid.Index
	for idx, t := range g.tiles.All() {
		if t.Kind == grid.Floor {
			free = append(free, idx)
		}
	}
	if len(free) == 0 {
		g.boardFull = true
		return false
	}
	g.tiles.Set(free[g.rng.Intn(len(free))], grid.FoodTile)
	return true
}
