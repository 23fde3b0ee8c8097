package marching

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cavegen/pkg/cave"
)

func loopLengths(outlines [][]int) []int {
	lens := make([]int, len(outlines))
	for i, o := range outlines {
		lens[i] = len(o)
	}
	return lens
}

func requireClosedLoops(t *testing.T, s *Surface, outlines [][]int) {
	t.Helper()
	for _, loop := range outlines {
		require.GreaterOrEqual(t, len(loop), 3)
		assert.Equal(t, loop[0], loop[len(loop)-1], "loop is closed")
		for i := 0; i+1 < len(loop); i++ {
			assert.True(t, s.isOutlineEdge(loop[i], loop[i+1]),
				"segment %d-%d is not an outline edge", loop[i], loop[i+1])
		}
	}
}

func TestOutlinesSolidGrid(t *testing.T) {
	s := Triangulate(cave.NewFilledGrid(4, 4, cave.Wall), 1, DefaultUVTiles)
	outlines := s.Outlines()

	require.Len(t, outlines, 1)
	assert.Len(t, outlines[0], 13, "twelve perimeter nodes plus the closing vertex")
	requireClosedLoops(t, s, outlines)
}

func TestOutlinesHole(t *testing.T) {
	g := cave.ParseGrid(
		"###",
		"#.#",
		"###",
	)
	s := Triangulate(g, 1, DefaultUVTiles)
	assert.Equal(t, 1, s.ConfigCounts[7])
	assert.Equal(t, 1, s.ConfigCounts[11])
	assert.Equal(t, 1, s.ConfigCounts[13])
	assert.Equal(t, 1, s.ConfigCounts[14])
	assert.Equal(t, 12, s.Mesh.TriangleCount())

	outlines := s.Outlines()
	assert.ElementsMatch(t, []int{9, 5}, loopLengths(outlines))
	requireClosedLoops(t, s, outlines)

	for _, loop := range outlines {
		pts := s.OutlinePoints(loop)
		if len(loop) == 9 {
			// Perimeter runs through control nodes only.
			for _, p := range pts {
				assert.Equal(t, float32(int(p.X)), p.X)
				assert.Equal(t, float32(int(p.Y)), p.Y)
				assert.GreaterOrEqual(t, p.X, float32(0))
				assert.LessOrEqual(t, p.X, float32(2))
			}
			continue
		}
		// The hole is bounded by the four midpoints around the centre.
		for _, p := range pts {
			assert.InDelta(t, 1, p.X, 0.5+1e-6)
			assert.InDelta(t, 1, p.Y, 0.5+1e-6)
		}
	}
}

func TestOutlinesCave(t *testing.T) {
	g := cave.ParseGrid(
		"##########",
		"#....#...#",
		"#....#...#",
		"#.........",
		"######...#",
		"##########",
	)
	s := Triangulate(g, 1, DefaultUVTiles)
	outlines := s.Outlines()
	require.NotEmpty(t, outlines)
	requireClosedLoops(t, s, outlines)

	// Each vertex starts or joins at most one loop.
	seen := make(map[int]bool)
	for _, loop := range outlines {
		for _, v := range loop[:len(loop)-1] {
			assert.False(t, seen[v], "vertex %d traced twice", v)
			seen[v] = true
			assert.False(t, s.Solid.Has(v), "solid vertex %d on an outline", v)
		}
	}
}

func TestOutlinesIdempotent(t *testing.T) {
	s := Triangulate(cave.ParseGrid(
		"######",
		"#..#.#",
		"#....#",
		"######",
	), 1, DefaultUVTiles)

	first := s.Outlines()
	assert.Equal(t, first, s.Outlines())
}

func TestOutlinesOpenFloor(t *testing.T) {
	s := Triangulate(cave.NewGrid(6, 6), 1, DefaultUVTiles)
	assert.Zero(t, s.Mesh.TriangleCount())
	assert.Empty(t, s.Outlines())
}

func TestExtrudeWalls(t *testing.T) {
	s := Triangulate(cave.ParseGrid(
		"###",
		"#.#",
		"###",
	), 1, DefaultUVTiles)
	outlines := s.Outlines()

	w := ExtrudeWalls(s.Mesh.Vertices, outlines, DefaultWallHeight)

	segments := 8 + 4
	require.Len(t, w.Vertices, 4*segments)
	require.Len(t, w.Normals, 4*segments)
	require.Len(t, w.Indices, 6*segments)

	for q := 0; q < segments; q++ {
		top, bottom := w.Vertices[4*q], w.Vertices[4*q+2]
		assert.Equal(t, top.X, bottom.X)
		assert.Equal(t, top.Z, bottom.Z)
		assert.Equal(t, float32(-DefaultWallHeight), bottom.Y-top.Y)

		n := w.Normals[4*q]
		assert.Zero(t, n.Y)
		assert.InDelta(t, 1, n.Length(), 1e-6)

		base := uint32(4 * q)
		assert.Equal(t, []uint32{base, base + 2, base + 3, base + 3, base + 1, base}, w.Indices[6*q:6*q+6])
	}
}

func TestExtrudeWallsEmpty(t *testing.T) {
	w := ExtrudeWalls(nil, nil, DefaultWallHeight)
	assert.Empty(t, w.Vertices)
	assert.Empty(t, w.Indices)
}

func TestCollisionRing(t *testing.T) {
	s := Triangulate(cave.NewFilledGrid(6, 6, cave.Wall), 1, DefaultUVTiles)
	outlines := s.Outlines()
	require.Len(t, outlines, 1)
	loop := outlines[0]

	raw := CollisionRing(s.Mesh.Vertices, loop, 0)
	require.Len(t, raw, len(loop))
	assert.True(t, raw.Closed())

	simplified := CollisionRing(s.Mesh.Vertices, loop, 0.1)
	assert.True(t, simplified.Closed())
	assert.GreaterOrEqual(t, len(simplified), 4)
	assert.Less(t, len(simplified), len(raw), "collinear perimeter points are dropped")

	// Simplification only ever removes points.
	in := make(map[orb.Point]bool, len(raw))
	for _, p := range raw {
		in[p] = true
	}
	for _, p := range simplified {
		assert.True(t, in[p], "point %v not on the outline", p)
	}

	rings := s.CollisionRings(outlines, 0.1)
	require.Len(t, rings, 1)
	assert.Equal(t, simplified, rings[0])
}
