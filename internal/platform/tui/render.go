package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// cellWidth is the number of terminal columns per tile. Two columns keep
// tiles roughly square in most terminal fonts.
const cellWidth = 2

// hudHeight is the number of rows above the board.
const hudHeight = 1

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorFloorDead: lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorSnake:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorHead:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// BoardSize returns the screen area in characters needed for a level of
// the given size in tiles, HUD row included.
func BoardSize(width, height int) (int, int) {
	return width * cellWidth, height + hudHeight
}

// TileGlyph returns the character drawn for a tile. Snake segments use
// box-drawing connectors chosen from their prev/next links so the body
// reads as one continuous line.
func TileGlyph(t grid.Tile) rune {
	switch t.Kind {
	case grid.Wall:
		return '█'
	case grid.Food:
		return '◆'
	case grid.Snake:
		if t.Next == grid.None {
			return '@'
		}
		return connector(t.Prev, t.Next)
	default:
		return '·'
	}
}

// connector picks the box-drawing glyph joining the links a and b.
// A tail has only one link and gets a half line pointing at its neighbour.
func connector(a, b grid.Direction) rune {
	has := func(d grid.Direction) bool { return a == d || b == d }
	switch {
	case has(grid.Up) && has(grid.Down):
		return '│'
	case has(grid.Left) && has(grid.Right):
		return '─'
	case has(grid.Up) && has(grid.Right):
		return '└'
	case has(grid.Up) && has(grid.Left):
		return '┘'
	case has(grid.Down) && has(grid.Right):
		return '┌'
	case has(grid.Down) && has(grid.Left):
		return '┐'
	case has(grid.Up):
		return '╵'
	case has(grid.Down):
		return '╷'
	case has(grid.Left):
		return '╴'
	case has(grid.Right):
		return '╶'
	}
	return '?'
}

// filler returns the character drawn in the second column of a tile.
// It continues the line to the right neighbour when the tile links there.
func filler(t grid.Tile) rune {
	switch t.Kind {
	case grid.Wall:
		return '█'
	case grid.Snake:
		if t.Prev == grid.Right || t.Next == grid.Right {
			return '─'
		}
	}
	return ' '
}

// tileColor returns the color of a tile given whether the snake is alive.
func tileColor(t grid.Tile, alive bool) core.Color {
	switch t.Kind {
	case grid.Wall:
		return core.ColorWall
	case grid.Food:
		return core.ColorFood
	case grid.Snake:
		if t.Next == grid.None {
			return core.ColorHead
		}
		return core.ColorSnake
	default:
		if !alive {
			return core.ColorFloorDead
		}
		return core.ColorFloor
	}
}

// DrawGame renders the HUD and the board into s, which must be at least
// BoardSize of the level.
func DrawGame(s *core.Screen, g *snake.GameState, paused bool) {
	s.Clear()

	hud := fmt.Sprintf("SCORE %d", g.Score())
	high := fmt.Sprintf("HIGH %d", core.Max(g.Highscore(), g.Score()))
	s.DrawTextColored(0, 0, hud, core.ColorHUD)
	s.DrawTextColored(s.Width()-len(high), 0, high, core.ColorHUD)

	alive := g.SnakeAlive()
	for idx, t := range g.Tiles().All() {
		x, y := idx.Col*cellWidth, idx.Row+hudHeight
		c := tileColor(t, alive)
		s.SetColored(x, y, TileGlyph(t), c)
		s.SetColored(x+1, y, filler(t), c)
	}

	board := core.NewRect(0, hudHeight, s.Width(), s.Height()-hudHeight)
	switch {
	case !alive:
		drawBanner(s, board, "GAME OVER", "press r to restart")
	case g.BoardFull():
		drawBanner(s, board, "BOARD FULL", "nowhere left to grow")
	case paused:
		drawBanner(s, board, "PAUSED", "press p to resume")
	}
}

// drawBanner draws a boxed two-line message centered on the board.
func drawBanner(s *core.Screen, area core.Rect, title, hint string) {
	w := core.Max(len(title), len(hint)) + 4
	box := core.CenteredRect(area, w, 4)
	s.FillRect(box, ' ', core.ColorBanner)
	s.DrawBox(box, core.ColorBanner)
	s.DrawTextColored(box.X+(w-len(title))/2, box.Y+1, title, core.ColorBanner)
	s.DrawTextColored(box.X+(w-len(hint))/2, box.Y+2, hint, core.ColorHUD)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// tooSmall renders the message shown when the terminal cannot hold the board.
func tooSmall(termW, termH, needW, needH int) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, termW, termH)
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center,
		style.Render(msg)+"\n"+colorStyles[core.ColorHUD].Render("enlarge the window or press q to quit"))
}
