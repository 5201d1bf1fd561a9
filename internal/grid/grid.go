package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Index addresses a cell by (row, column).
type Index struct {
	Row, Col int
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}

// Grid is a fixed-size height x width array of tiles stored row-major.
// Its dimensions never change after New.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// New allocates a grid with every cell set to Floor.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether i addresses a cell of the grid.
func (g *Grid) InBounds(i Index) bool {
	return i.Row >= 0 && i.Row < g.height && i.Col >= 0 && i.Col < g.width
}

// IsBorder reports whether i lies on the outer ring.
func (g *Grid) IsBorder(i Index) bool {
	return i.Row == 0 || i.Col == 0 || i.Row == g.height-1 || i.Col == g.width-1
}

// At returns the tile at i. It panics when i is out of bounds.
func (g *Grid) At(i Index) Tile {
	return g.cells[g.offset(i)]
}

// Set stores t at i. It panics when i is out of bounds.
func (g *Grid) Set(i Index, t Tile) {
	g.cells[g.offset(i)] = t
}

func (g *Grid) offset(i Index) int {
	if !g.InBounds(i) {
		panic(fmt.Sprintf("grid: index %v out of bounds for %dx%d grid", i, g.width, g.height))
	}
	return i.Row*g.width + i.Col
}

// StampBorder turns the outer ring of cells into walls.
func (g *Grid) StampBorder() {
	for col := range g.width {
		g.Set(Index{0, col}, WallTile)
		g.Set(Index{g.height - 1, col}, WallTile)
	}
	for row := 1; row < g.height-1; row++ {
		g.Set(Index{row, 0}, WallTile)
		g.Set(Index{row, g.width - 1}, WallTile)
	}
}

// Step returns the neighbour of i in direction d.
//
// Coordinates wrap modulo the grid dimensions, so every cell is reachable
// from every other and stepping never leaves the grid. With the wall ring in
// place the snake dies before a wrap can happen; without walls the arena
// becomes a torus.
func (g *Grid) Step(i Index, d Direction) Index {
	switch d {
	case Up:
		i.Row = (i.Row + g.height - 1) % g.height
	case Down:
		i.Row = (i.Row + 1) % g.height
	case Left:
		i.Col = (i.Col + g.width - 1) % g.width
	case Right:
		i.Col = (i.Col + 1) % g.width
	}
	return i
}

// All yields every cell in row-major order.
func (g *Grid) All() iter.Seq2[Index, Tile] {
	return func(yield func(Index, Tile) bool) {
		for off, t := range g.cells {
			if !yield(Index{off / g.width, off % g.width}, t) {
				return
			}
		}
	}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, t := range g.cells {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Tile, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows encodes the grid as one string per row, tiles separated by spaces.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for row := range g.height {
		sb.Reset()
		for col := range g.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.At(Index{row, col}).String())
		}
		rows[row] = sb.String()
	}
	return rows
}

// ParseRows is the inverse of Rows. Every row must hold the same number of
// tiles.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	var g *Grid
	for row, line := range rows {
		fields := strings.Fields(line)
		if g == nil {
			if len(fields) == 0 {
				return nil, fmt.Errorf("grid: row 0 is empty")
			}
			g = New(len(fields), len(rows))
		}
		if len(fields) != g.width {
			return nil, fmt.Errorf("grid: row %d has %d tiles, expected %d", row, len(fields), g.width)
		}
		for col, field := range fields {
			t, err := ParseTile(field)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", row, col, err)
			}
			g.Set(Index{row, col}, t)
		}
	}
	return g, nil
}

// View is a read-only window onto a Grid.
type View struct {
	g *Grid
}

// NewView wraps g.
func NewView(g *Grid) View { return View{g: g} }

// Width returns the number of columns.
func (v View) Width() int { return v.g.width }

// Height returns the number of rows.
func (v View) Height() int { return v.g.height }

// At returns the tile at i.
func (v View) At(i Index) Tile { return v.g.At(i) }

// All yields every cell in row-major order.
func (v View) All() iter.Seq2[Index, Tile] { return v.g.All() }

// Count returns the number of cells of the given kind.
func (v View) Count(k Kind) int { return v.g.Count(k) }

// Clone returns a mutable copy of the viewed grid.
func (v View) Clone() *Grid { return v.g.Clone() }
