package cave

// neighbourThreshold is the wall count at which a cell keeps its state.
const neighbourThreshold = 4

// SurroundingWallCount counts walls among the 8 neighbours of (x, y).
// Neighbours outside the grid count as walls.
func SurroundingWallCount(g *Grid, x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.At(nx, ny))
		}
	}
	return count
}

// SmoothStep applies one majority-vote pass and returns the new grid.
// Every cell is computed from g, which is left untouched.
func SmoothStep(g *Grid) *Grid {
	next := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			walls := SurroundingWallCount(g, x, y)
			switch {
			case walls > neighbourThreshold:
				next.Set(x, y, Wall)
			case walls < neighbourThreshold:
				next.Set(x, y, Floor)
			default:
				next.Set(x, y, g.At(x, y))
			}
		}
	}
	return next
}

// Smooth applies iterations passes of SmoothStep.
func Smooth(g *Grid, iterations int) *Grid {
	for i := 0; i < iterations; i++ {
		g = SmoothStep(g)
	}
	return g
}

// IsStable reports whether another smoothing pass would leave g unchanged.
func IsStable(g *Grid) bool {
	return SmoothStep(g).Equal(g)
}
