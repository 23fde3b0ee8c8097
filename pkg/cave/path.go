package cave

import (
	"github.com/zyedidia/generic/heap"
)

// pathNode is an open-set entry. A tile may be pushed more than once; stale
// entries are skipped when popped.
type pathNode struct {
	at   int
	g, f int
}

// PathFinder finds walking routes over the floor of a grid with A*.
// Movement is 4-way with unit cost, matching region connectivity.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder returns a pathfinder over g. g is read, never modified.
func NewPathFinder(g *Grid) *PathFinder {
	return &PathFinder{grid: g}
}

// Walkable reports whether (x, y) is an in-bounds floor tile.
func (pf *PathFinder) Walkable(x, y int) bool {
	return pf.grid.InBounds(x, y) && pf.grid.At(x, y) == Floor
}

// FindPath returns the shortest route from start to goal, both included,
// or nil when either end is not walkable or no route exists.
func (pf *PathFinder) FindPath(start, goal Coord) []Coord {
	if !pf.Walkable(start.X, start.Y) || !pf.Walkable(goal.X, goal.Y) {
		return nil
	}

	w := pf.grid.Width
	n := w * pf.grid.Height
	cost := make([]int, n)
	parent := make([]int, n)
	closed := make([]bool, n)
	for i := range cost {
		cost[i] = -1
		parent[i] = -1
	}

	open := heap.New(func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	})
	s := start.Y*w + start.X
	cost[s] = 0
	open.Push(pathNode{at: s, f: manhattan(start, goal)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed[cur.at] {
			continue
		}
		closed[cur.at] = true

		x, y := cur.at%w, cur.at/w
		if x == goal.X && y == goal.Y {
			return pf.reconstruct(parent, cur.at)
		}

		for _, d := range orthogonal {
			nx, ny := x+d.X, y+d.Y
			if !pf.Walkable(nx, ny) {
				continue
			}
			next := ny*w + nx
			g := cur.g + 1
			if closed[next] || (cost[next] >= 0 && g >= cost[next]) {
				continue
			}
			cost[next] = g
			parent[next] = cur.at
			open.Push(pathNode{at: next, g: g, f: g + manhattan(Coord{nx, ny}, goal)})
		}
	}
	return nil
}

func (pf *PathFinder) reconstruct(parent []int, end int) []Coord {
	w := pf.grid.Width
	var path []Coord
	for i := end; i >= 0; i = parent[i] {
		path = append(path, Coord{i % w, i / w})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// WalkDistances returns, per room, the number of steps from the main room's
// first tile to the room's first tile, or -1 when it cannot be reached on
// foot. rooms must have the main room first.
func WalkDistances(g *Grid, rooms []*Room) []int {
	dist := make([]int, len(rooms))
	if len(rooms) == 0 {
		return dist
	}
	pf := NewPathFinder(g)
	from := rooms[0].Tiles[0]
	for i, r := range rooms {
		path := pf.FindPath(from, r.Tiles[0])
		dist[i] = len(path) - 1
	}
	return dist
}
