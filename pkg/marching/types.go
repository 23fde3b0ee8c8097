// Package marching turns an occupancy grid into surface and wall meshes
// using marching squares over a lattice of cell-centre control nodes.
package marching

import (
	"github.com/Faultbox/cavegen/pkg/math"
)

// Mesh holds the triangulated cave surface ready for upload.
type Mesh struct {
	Vertices []math.Vec3
	UVs      []math.Vec2
	Indices  []uint32
	// Groups splits Indices into one sub-mesh per square configuration.
	Groups []ConfigGroup
	Bounds Bounds
}

// ConfigGroup is the index range emitted by one square configuration.
type ConfigGroup struct {
	Configuration int
	StartIndex    int32
	IndexCount    int32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// WallMesh holds the vertical wall strips extruded from outline loops.
// Every quad owns its four vertices so normals stay flat per face.
type WallMesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	Indices  []uint32
}

// Triangle is three vertex indices in winding order.
type Triangle [3]int

// Contains reports whether v is one of the triangle's vertices.
func (t Triangle) Contains(v int) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

func emptyBounds() Bounds {
	return Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
}

func (b *Bounds) extend(p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
