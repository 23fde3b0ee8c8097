package cave

import (
	"fmt"
	"sort"
)

// Strategy selects how rooms are joined.
type Strategy string

// Connection strategies.
const (
	// StrategyGreedy joins each isolated room to its nearest neighbour, then
	// repeatedly bridges the closest pair between the main component and
	// the rest. Not a minimum spanning tree.
	StrategyGreedy Strategy = "greedy"
	// StrategyMST carves the minimum spanning tree of the complete room
	// graph weighted by closest edge-tile distance.
	StrategyMST Strategy = "mst"
)

// Valid reports whether s names a known strategy. Empty means greedy.
func (s Strategy) Valid() bool {
	return s == "" || s == StrategyGreedy || s == StrategyMST
}

// Passage records one carved corridor.
type Passage struct {
	RoomA, RoomB int
	TileA, TileB Coord
	DistSq       int
	Line         []Coord
}

// connector carries the state of one connectivity pass.
type connector struct {
	grid     *Grid
	rooms    []*Room
	graph    *RoomGraph
	radius   int
	passages []Passage
}

// ConnectRooms joins rooms so every room is reachable from the main room,
// carving corridors of the given radius into g. rooms must be sorted with the
// main room first and Index set to the slice position.
func ConnectRooms(g *Grid, rooms []*Room, strategy Strategy, radius int) (*RoomGraph, []Passage, error) {
	c := &connector{
		grid:   g,
		rooms:  rooms,
		graph:  NewRoomGraph(len(rooms)),
		radius: radius,
	}

	switch strategy {
	case "", StrategyGreedy:
		c.connectGreedy()
		c.forceConnectToMain()
	case StrategyMST:
		c.connectMST()
	default:
		return nil, nil, fmt.Errorf("%w: unknown connect strategy %q", ErrInvalidConfig, strategy)
	}
	return c.graph, c.passages, nil
}

// connectGreedy joins every room that has no corridor yet to the closest
// room it is not already joined to. Rooms joined earlier in the pass are
// skipped.
func (c *connector) connectGreedy() {
	for _, a := range c.rooms {
		if c.graph.Degree(a.Index) > 0 {
			continue
		}

		var (
			bestA, bestB Coord
			bestDist     int
			bestRoom     *Room
			found        bool
		)
		for _, b := range c.rooms {
			if a == b || c.graph.IsConnected(a.Index, b.Index) {
				continue
			}
			ta, tb, d, ok := closestTiles(a, b)
			if ok && (!found || d < bestDist) {
				bestA, bestB, bestDist, bestRoom, found = ta, tb, d, b, true
			}
		}
		if found {
			c.createPassage(a, bestRoom, bestA, bestB, bestDist)
		}
	}
}

// forceConnectToMain bridges the closest pair between rooms reachable from
// the main room and the others until every room is reachable.
func (c *connector) forceConnectToMain() {
	for range c.rooms {
		var connected, isolated []*Room
		for _, r := range c.rooms {
			if r.IsConnectedToMain {
				connected = append(connected, r)
			} else {
				isolated = append(isolated, r)
			}
		}
		if len(isolated) == 0 || len(connected) == 0 {
			return
		}

		var (
			bestA, bestB     Coord
			bestDist         int
			bestFrom, bestTo *Room
			found            bool
		)
		for _, a := range isolated {
			for _, b := range connected {
				ta, tb, d, ok := closestTiles(a, b)
				if ok && (!found || d < bestDist) {
					bestA, bestB, bestDist, bestFrom, bestTo, found = ta, tb, d, a, b, true
				}
			}
		}
		if !found {
			return
		}
		c.createPassage(bestFrom, bestTo, bestA, bestB, bestDist)
	}
}

// roomEdge is a candidate corridor between two rooms.
type roomEdge struct {
	a, b         int
	tileA, tileB Coord
	dist         int
}

// connectMST runs Kruskal over all room pairs with a disjoint-set forest
// (path compression, union by rank).
func (c *connector) connectMST() {
	n := len(c.rooms)
	var edges []roomEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ta, tb, d, ok := closestTiles(c.rooms[i], c.rooms[j])
			if ok {
				edges = append(edges, roomEdge{i, j, ta, tb, d})
			}
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].dist < edges[j].dist
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	joined := 0
	for _, e := range edges {
		if joined == n-1 {
			break
		}
		ra, rb := find(e.a), find(e.b)
		if ra == rb {
			continue
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}
		joined++
		c.createPassage(c.rooms[e.a], c.rooms[e.b], e.tileA, e.tileB, e.dist)
	}
}

// createPassage joins a and b in the graph and carves the corridor.
func (c *connector) createPassage(a, b *Room, tileA, tileB Coord, dist int) {
	c.link(a, b)
	line := CarvePassage(c.grid, tileA, tileB, c.radius)
	c.passages = append(c.passages, Passage{
		RoomA:  a.Index,
		RoomB:  b.Index,
		TileA:  tileA,
		TileB:  tileB,
		DistSq: dist,
		Line:   line,
	})
}

// link records the edge and spreads the connected-to-main flag through the
// component when either side already carries it.
func (c *connector) link(a, b *Room) {
	c.graph.Connect(a.Index, b.Index)
	switch {
	case a.IsConnectedToMain && !b.IsConnectedToMain:
		c.markConnectedToMain(b)
	case b.IsConnectedToMain && !a.IsConnectedToMain:
		c.markConnectedToMain(a)
	}
}

// markConnectedToMain flags start and every room reachable from it.
func (c *connector) markConnectedToMain(start *Room) {
	start.IsConnectedToMain = true
	queue := []int{start.Index}
	for qi := 0; qi < len(queue); qi++ {
		for _, next := range c.graph.Neighbors(queue[qi]) {
			r := c.rooms[next]
			if r.IsConnectedToMain {
				continue
			}
			r.IsConnectedToMain = true
			queue = append(queue, next)
		}
	}
}
