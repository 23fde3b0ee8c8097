// Package cave synthesizes connected cave layouts on a binary occupancy grid.
//
// The pipeline is random fill, cellular-automaton smoothing, region pruning,
// room construction and corridor carving between rooms. Every function works
// on caller-owned values; nothing is cached between calls.
package cave

import (
	"fmt"
	"strings"
)

// Cell is the occupancy state of one grid cell.
type Cell uint8

// Cell states. The numeric values double as wall counts during smoothing.
const (
	Floor Cell = 0
	Wall  Cell = 1
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// DistSq returns the squared Euclidean distance between two cells.
func (c Coord) DistSq(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Grid is a dense width×height occupancy grid stored row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewGrid returns an all-floor grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// NewFilledGrid returns a grid with every cell set to state.
func NewFilledGrid(width, height int, state Cell) *Grid {
	g := NewGrid(width, height)
	for i := range g.Cells {
		g.Cells[i] = state
	}
	return g
}

// ParseGrid builds a grid from text rows, '#' for wall and anything else for
// floor. Row i becomes y = i. Rows shorter than the first are padded with wall.
func ParseGrid(rows ...string) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewFilledGrid(len(rows[0]), len(rows), Wall)
	for y, row := range rows {
		for x := 0; x < g.Width && x < len(row); x++ {
			if row[x] != '#' {
				g.Set(x, y, Floor)
			}
		}
	}
	return g
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the cell at (x, y). Cells outside the grid read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Cells[y*g.Width+x]
}

// Set writes the cell at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y*g.Width+x] = c
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns how many cells hold state.
func (g *Grid) Count(state Cell) int {
	n := 0
	for _, c := range g.Cells {
		if c == state {
			n++
		}
	}
	return n
}

// Bordered returns a copy padded with a wall ring of the given thickness.
func (g *Grid) Bordered(size int) *Grid {
	b := NewFilledGrid(g.Width+size*2, g.Height+size*2, Wall)
	for y := 0; y < g.Height; y++ {
		copy(b.Cells[(y+size)*b.Width+size:], g.Cells[y*g.Width:(y+1)*g.Width])
	}
	return b
}

// String renders the grid with '#' for wall and '.' for floor, y = 0 first.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
