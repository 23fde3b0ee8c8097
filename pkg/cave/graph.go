package cave

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// RoomGraph is the undirected corridor graph between rooms, keyed by
// Room.Index.
type RoomGraph struct {
	adj []mapset.Set[int]
}

// NewRoomGraph returns a graph of n rooms without edges.
func NewRoomGraph(n int) *RoomGraph {
	g := &RoomGraph{adj: make([]mapset.Set[int], n)}
	for i := range g.adj {
		g.adj[i] = mapset.New[int]()
	}
	return g
}

// Len returns the number of rooms.
func (g *RoomGraph) Len() int {
	return len(g.adj)
}

// Connect records a symmetric edge between a and b.
func (g *RoomGraph) Connect(a, b int) {
	if a == b {
		return
	}
	g.adj[a].Put(b)
	g.adj[b].Put(a)
}

// IsConnected reports whether a corridor joins a and b directly.
func (g *RoomGraph) IsConnected(a, b int) bool {
	return g.adj[a].Has(b)
}

// Degree returns how many rooms are directly joined to i.
func (g *RoomGraph) Degree(i int) int {
	return g.adj[i].Size()
}

// Neighbors returns the rooms directly joined to i in ascending order.
func (g *RoomGraph) Neighbors(i int) []int {
	out := make([]int, 0, g.adj[i].Size())
	g.adj[i].Each(func(j int) {
		out = append(out, j)
	})
	sort.Ints(out)
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *RoomGraph) EdgeCount() int {
	n := 0
	for _, s := range g.adj {
		n += s.Size()
	}
	return n / 2
}

// Reachable returns, per room, whether it can be reached from start.
// Breadth-first with a visited set, so cycles terminate.
func (g *RoomGraph) Reachable(start int) []bool {
	seen := make([]bool, len(g.adj))
	if start < 0 || start >= len(g.adj) {
		return seen
	}
	seen[start] = true
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, next := range g.Neighbors(queue[qi]) {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

// IsConnectedGraph reports whether every room is reachable from room 0.
func (g *RoomGraph) IsConnectedGraph() bool {
	for _, ok := range g.Reachable(0) {
		if !ok {
			return false
		}
	}
	return true
}
