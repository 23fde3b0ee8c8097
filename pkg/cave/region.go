package cave

// Region is a maximal 4-connected set of cells sharing one state.
type Region []Coord

// orthogonal lists the 4-connected neighbour offsets.
var orthogonal = [4]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Regions returns every region of cells equal to state, in scan order
// (x outer, y inner). Each matching cell belongs to exactly one region.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags.
func Regions(g *Grid, state Cell) []Region {
	visited := make([]bool, len(g.Cells))
	var regions []Region

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			i := y*g.Width + x
			if visited[i] || g.Cells[i] != state {
				continue
			}
			regions = append(regions, floodFill(g, x, y, visited))
		}
	}
	return regions
}

// floodFill collects the region containing (x, y) by BFS, marking visited.
func floodFill(g *Grid, x, y int, visited []bool) Region {
	state := g.At(x, y)
	queue := []Coord{{x, y}}
	visited[y*g.Width+x] = true

	for qi := 0; qi < len(queue); qi++ {
		tile := queue[qi]
		for _, d := range orthogonal {
			nx, ny := tile.X+d.X, tile.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := ny*g.Width + nx
			if visited[ni] || g.Cells[ni] != state {
				continue
			}
			visited[ni] = true
			queue = append(queue, Coord{nx, ny})
		}
	}
	return Region(queue)
}
