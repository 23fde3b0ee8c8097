package cave

import (
	"fmt"
	"sort"
)

// Params controls region pruning and room connection.
type Params struct {
	// RegionSizeThreshold is the smallest region that survives pruning.
	RegionSizeThreshold int
	// PassageRadius is the radius of the disc carved along corridors.
	PassageRadius int
	Strategy      Strategy
}

// Layout is the result of processing a smoothed grid.
type Layout struct {
	Grid     *Grid
	Rooms    []*Room
	Graph    *RoomGraph
	Passages []Passage

	RemovedWallRegions  int
	RemovedFloorRegions int
}

// MainRoom returns the largest room.
func (l *Layout) MainRoom() *Room {
	if len(l.Rooms) == 0 {
		return nil
	}
	return l.Rooms[0]
}

// Prune fills floor pockets and clears wall slivers smaller than threshold,
// in place. Walls are pruned first, then floors are re-extracted so that
// cleared slivers merge into their surrounding floor. It returns the surviving
// floor regions in scan order.
func Prune(g *Grid, threshold int) (rooms []Region, removedWalls, removedFloors int) {
	for _, region := range Regions(g, Wall) {
		if len(region) >= threshold {
			continue
		}
		for _, tile := range region {
			g.Set(tile.X, tile.Y, Floor)
		}
		removedWalls++
	}

	for _, region := range Regions(g, Floor) {
		if len(region) >= threshold {
			rooms = append(rooms, region)
			continue
		}
		for _, tile := range region {
			g.Set(tile.X, tile.Y, Wall)
		}
		removedFloors++
	}
	return rooms, removedWalls, removedFloors
}

// BuildRooms turns surviving floor regions into rooms sorted by size,
// largest first, and marks the largest as main. Edge tiles are taken after
// all pruning so they reflect the final walls.
func BuildRooms(g *Grid, regions []Region) ([]*Room, error) {
	if len(regions) == 0 {
		return nil, ErrNoRooms
	}
	rooms := make([]*Room, 0, len(regions))
	for _, region := range regions {
		rooms = append(rooms, NewRoom(region, g))
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Size() > rooms[j].Size()
	})
	for i, r := range rooms {
		r.Index = i
	}
	rooms[0].IsMain = true
	rooms[0].IsConnectedToMain = true
	return rooms, nil
}

// Process prunes g, builds rooms and carves the corridors joining them.
// g is modified in place and returned in the layout.
func Process(g *Grid, p Params) (*Layout, error) {
	if p.RegionSizeThreshold < 0 {
		return nil, fmt.Errorf("%w: region size threshold %d", ErrInvalidConfig, p.RegionSizeThreshold)
	}
	if p.PassageRadius < 0 {
		return nil, fmt.Errorf("%w: passage radius %d", ErrInvalidConfig, p.PassageRadius)
	}
	if !p.Strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown connect strategy %q", ErrInvalidConfig, p.Strategy)
	}

	regions, removedWalls, removedFloors := Prune(g, p.RegionSizeThreshold)
	rooms, err := BuildRooms(g, regions)
	if err != nil {
		return nil, err
	}

	graph, passages, err := ConnectRooms(g, rooms, p.Strategy, p.PassageRadius)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Grid:                g,
		Rooms:               rooms,
		Graph:               graph,
		Passages:            passages,
		RemovedWallRegions:  removedWalls,
		RemovedFloorRegions: removedFloors,
	}, nil
}
