package cave

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRooms is two 3×3 chambers separated by a solid wall strip.
var twoRooms = []string{
	"###########",
	"###########",
	"##...#...##",
	"##...#...##",
	"##...#...##",
	"###########",
	"###########",
}

func TestNewRoomEdgeTiles(t *testing.T) {
	g := ParseGrid(twoRooms...)
	floors := Regions(g, Floor)
	require.Len(t, floors, 2)

	room := NewRoom(floors[0], g)
	assert.Equal(t, 9, room.Size())
	assert.Len(t, room.EdgeTiles, 8, "every tile but the centre touches a wall")
	assert.NotContains(t, room.EdgeTiles, Coord{3, 3})

	seen := make(map[Coord]bool)
	for _, tile := range room.EdgeTiles {
		assert.Equal(t, Floor, g.At(tile.X, tile.Y))
		assert.False(t, seen[tile], "edge tile %v listed twice", tile)
		seen[tile] = true
	}
}

func TestNewRoomGridEdgeCountsAsWall(t *testing.T) {
	g := NewGrid(3, 3)
	room := NewRoom(Regions(g, Floor)[0], g)
	assert.Len(t, room.EdgeTiles, 8)
}

func TestPrune(t *testing.T) {
	g := ParseGrid(
		"##########",
		"#....#####",
		"#.#..#####",
		"#....##.##",
		"##########",
	)
	rooms, removedWalls, removedFloors := Prune(g, 3)

	assert.Equal(t, 1, removedWalls, "the lone pillar is cleared")
	assert.Equal(t, 1, removedFloors, "the single-cell pocket is filled")
	require.Len(t, rooms, 1)
	assert.Len(t, rooms[0], 12)
	assert.Equal(t, Floor, g.At(2, 2))
	assert.Equal(t, Wall, g.At(7, 3))
}

func TestPruneLeavesNoSmallRegions(t *testing.T) {
	const threshold = 12
	for i := 0; i < 8; i++ {
		g := Smooth(RandomFill(48, 32, 46, NewRand(fmt.Sprintf("prune-%d", i))), 5)
		Prune(g, threshold)
		for _, r := range Regions(g, Floor) {
			assert.GreaterOrEqual(t, len(r), threshold)
		}
	}
}

func TestBuildRoomsNoRooms(t *testing.T) {
	g := NewFilledGrid(5, 5, Wall)
	_, err := BuildRooms(g, nil)
	require.ErrorIs(t, err, ErrNoRooms)

	_, err = Process(g, Params{RegionSizeThreshold: 1})
	require.True(t, errors.Is(err, ErrNoRooms))
}

func TestBuildRoomsSortedLargestFirst(t *testing.T) {
	g := ParseGrid(
		"#########",
		"#.##...##",
		"#.##...##",
		"#########",
	)
	rooms, err := BuildRooms(g, Regions(g, Floor))
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	assert.Equal(t, 6, rooms[0].Size())
	assert.True(t, rooms[0].IsMain)
	assert.True(t, rooms[0].IsConnectedToMain)
	assert.False(t, rooms[1].IsMain)
	assert.False(t, rooms[1].IsConnectedToMain)
	for i, r := range rooms {
		assert.Equal(t, i, r.Index)
	}
}

func TestProcessTwoRoomsCarvesOneCorridor(t *testing.T) {
	for _, strategy := range []Strategy{StrategyGreedy, StrategyMST} {
		t.Run(string(strategy), func(t *testing.T) {
			g := ParseGrid(twoRooms...)
			layout, err := Process(g, Params{RegionSizeThreshold: 5, PassageRadius: 1, Strategy: strategy})
			require.NoError(t, err)

			require.Len(t, layout.Rooms, 2)
			require.Len(t, layout.Passages, 1)
			for _, r := range layout.Rooms {
				assert.True(t, r.IsConnectedToMain)
			}
			assert.True(t, layout.Graph.IsConnected(0, 1))
			assert.Equal(t, 1, layout.Graph.EdgeCount())

			p := layout.Passages[0]
			assert.Equal(t, 4, p.DistSq, "facing edge tiles sit either side of the strip")
			assert.Len(t, Regions(g, Floor), 1, "corridor joins both chambers")
		})
	}
}

func TestProcessRejectsBadParams(t *testing.T) {
	tests := []Params{
		{RegionSizeThreshold: -1},
		{PassageRadius: -2},
		{Strategy: "spiral"},
	}
	for _, p := range tests {
		_, err := Process(ParseGrid(twoRooms...), p)
		assert.ErrorIs(t, err, ErrInvalidConfig, "params %+v", p)
	}
}

func TestProcessConnectivity(t *testing.T) {
	for _, strategy := range []Strategy{StrategyGreedy, StrategyMST} {
		for i := 0; i < 12; i++ {
			seed := fmt.Sprintf("connect-%d", i)
			t.Run(fmt.Sprintf("%s/%s", strategy, seed), func(t *testing.T) {
				g := Smooth(RandomFill(64, 40, 48, NewRand(seed)), 12)
				layout, err := Process(g, Params{RegionSizeThreshold: 10, PassageRadius: 1, Strategy: strategy})
				if errors.Is(err, ErrNoRooms) {
					t.Skip("seed produced no rooms")
				}
				require.NoError(t, err)

				assert.True(t, layout.Graph.IsConnectedGraph())
				reach := layout.Graph.Reachable(layout.MainRoom().Index)
				for _, r := range layout.Rooms {
					assert.True(t, r.IsConnectedToMain, "room %d not flagged", r.Index)
					assert.True(t, reach[r.Index], "room %d unreachable", r.Index)
				}
				assert.Len(t, Regions(g, Floor), 1, "floor must be one walkable region")

				if strategy == StrategyMST {
					assert.Len(t, layout.Passages, len(layout.Rooms)-1)
				}
			})
		}
	}
}

func TestProcessDeterministic(t *testing.T) {
	run := func() *Grid {
		g := Smooth(RandomFill(10, 10, 45, NewRand("test")), 12)
		_, err := Process(g, Params{RegionSizeThreshold: 5, PassageRadius: 1})
		if err != nil && !errors.Is(err, ErrNoRooms) {
			t.Fatalf("process: %v", err)
		}
		return g.Bordered(1)
	}
	assert.True(t, run().Equal(run()))
}
