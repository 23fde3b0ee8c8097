package cave

// Room is a floor region that survived pruning.
type Room struct {
	// Index is the room's position in the size-sorted room list and its
	// vertex id in the RoomGraph.
	Index int
	Tiles []Coord
	// EdgeTiles are the tiles with at least one orthogonal wall neighbour.
	EdgeTiles         []Coord
	IsMain            bool
	IsConnectedToMain bool
}

// NewRoom builds a room from a floor region of g.
//
// Edge tiles use strict 4-neighbour wall adjacency and each tile is listed
// once. Cells beyond the grid edge count as wall.
func NewRoom(region Region, g *Grid) *Room {
	r := &Room{Tiles: region}
	for _, tile := range region {
		for _, d := range orthogonal {
			if g.At(tile.X+d.X, tile.Y+d.Y) == Wall {
				r.EdgeTiles = append(r.EdgeTiles, tile)
				break
			}
		}
	}
	return r
}

// Size returns the number of tiles in the room.
func (r *Room) Size() int {
	return len(r.Tiles)
}

// closestTiles returns the edge-tile pair of a and b with the smallest
// squared distance. The first pair found wins ties. ok is false when either
// room has no edge tiles.
func closestTiles(a, b *Room) (tileA, tileB Coord, dist int, ok bool) {
	for _, ta := range a.EdgeTiles {
		for _, tb := range b.EdgeTiles {
			d := ta.DistSq(tb)
			if !ok || d < dist {
				tileA, tileB, dist, ok = ta, tb, d, true
			}
		}
	}
	return tileA, tileB, dist, ok
}
