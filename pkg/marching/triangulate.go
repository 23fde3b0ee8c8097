package marching

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Faultbox/cavegen/pkg/cave"
	"github.com/Faultbox/cavegen/pkg/math"
)

// DefaultUVTiles is how many times the floor texture repeats across the map.
const DefaultUVTiles = 10

// Surface is a triangulated grid together with the adjacency data the
// outline tracer needs.
type Surface struct {
	Lattice *Lattice
	Mesh    *Mesh
	// Triangles lists every triangle in creation order.
	Triangles []Triangle
	// ByVertex maps a vertex index to the triangles that use it.
	ByVertex map[int][]Triangle
	// Solid holds vertices enclosed by fully solid squares. They can never
	// lie on an outline and are skipped by the tracer. Corners on the
	// lattice perimeter are never included.
	Solid mapset.Set[int]
	// ConfigCounts counts squares per configuration.
	ConfigCounts [16]int
}

// Triangulate runs marching squares over g, where wall cells are active.
// Vertices are pushed the first time any square references their node.
func Triangulate(g *cave.Grid, cellSize, uvTiles float32) *Surface {
	l := NewLattice(g, cellSize)
	s := &Surface{
		Lattice:  l,
		ByVertex: make(map[int][]Triangle),
		Solid:    mapset.New[int](),
	}

	var vertices []math.Vec3
	var groups [16][]uint32
	indices := make([]int, 0, 6)

	for _, sq := range l.Squares {
		s.ConfigCounts[sq.Configuration]++
		points := configurations[sq.Configuration]
		if len(points) == 0 {
			continue
		}

		indices = indices[:0]
		for _, c := range points {
			n := &l.Nodes[sq.node(c)]
			if n.VertexIndex == unassigned {
				n.VertexIndex = len(vertices)
				vertices = append(vertices, n.Position)
			}
			indices = append(indices, n.VertexIndex)
		}

		for i := 2; i < len(indices); i++ {
			tri := Triangle{indices[0], indices[i-1], indices[i]}
			s.addTriangle(tri)
			groups[sq.Configuration] = append(groups[sq.Configuration],
				uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}

		if sq.Configuration == 15 {
			for _, c := range points {
				n := l.Nodes[sq.node(c)]
				if !n.Perimeter {
					s.Solid.Put(n.VertexIndex)
				}
			}
		}
	}

	s.Mesh = buildMesh(vertices, groups, l, uvTiles)
	return s
}

func (s *Surface) addTriangle(t Triangle) {
	s.Triangles = append(s.Triangles, t)
	for _, v := range t {
		s.ByVertex[v] = append(s.ByVertex[v], t)
	}
}

// buildMesh concatenates the per-configuration index lists in ascending
// configuration order.
func buildMesh(vertices []math.Vec3, groups [16][]uint32, l *Lattice, uvTiles float32) *Mesh {
	m := &Mesh{
		Vertices: vertices,
		UVs:      PlanarUVs(vertices, l.WorldWidth, l.WorldHeight, uvTiles),
		Bounds:   emptyBounds(),
	}
	for config, idx := range groups {
		if len(idx) == 0 {
			continue
		}
		m.Groups = append(m.Groups, ConfigGroup{
			Configuration: config,
			StartIndex:    int32(len(m.Indices)),
			IndexCount:    int32(len(idx)),
		})
		m.Indices = append(m.Indices, idx...)
	}
	for _, v := range vertices {
		m.Bounds.extend(v)
	}
	return m
}

// PlanarUVs maps vertex XZ positions across a width×height extent centred
// on the origin, repeated tiles times.
func PlanarUVs(vertices []math.Vec3, width, height, tiles float32) []math.Vec2 {
	uvs := make([]math.Vec2, len(vertices))
	for i, v := range vertices {
		uvs[i] = math.Vec2{
			X: math.InverseLerp(-width/2, width/2, v.X) * tiles,
			Y: math.InverseLerp(-height/2, height/2, v.Z) * tiles,
		}
	}
	return uvs
}
