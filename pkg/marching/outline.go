package marching

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Faultbox/cavegen/pkg/math"
)

// Outlines traces every closed boundary loop of the surface.
//
// An outline edge is a vertex pair shared by exactly one triangle. Vertices
// are scanned in index order; each unchecked vertex with an outline edge to
// an unchecked neighbour starts a loop that is followed until no unchecked
// continuation remains, then closed back onto its start. Every vertex is
// checked at most once, so tracing always terminates. Loops start and end on
// the same vertex.
//
// The surface is not modified; calling Outlines twice yields the same loops.
func (s *Surface) Outlines() [][]int {
	checked := mapset.New[int]()
	s.Solid.Each(func(v int) {
		checked.Put(v)
	})

	var outlines [][]int
	for v := range s.Mesh.Vertices {
		if checked.Has(v) {
			continue
		}
		next := s.connectedOutlineVertex(v, checked)
		if next == unassigned {
			continue
		}
		checked.Put(v)

		loop := []int{v}
		for next != unassigned {
			loop = append(loop, next)
			checked.Put(next)
			next = s.connectedOutlineVertex(next, checked)
		}
		outlines = append(outlines, append(loop, v))
	}
	return outlines
}

// connectedOutlineVertex returns the first unchecked neighbour of v joined
// by an outline edge, or unassigned.
func (s *Surface) connectedOutlineVertex(v int, checked mapset.Set[int]) int {
	for _, tri := range s.ByVertex[v] {
		for _, b := range tri {
			if b == v || checked.Has(b) {
				continue
			}
			if s.isOutlineEdge(v, b) {
				return b
			}
		}
	}
	return unassigned
}

// isOutlineEdge reports whether exactly one triangle uses both a and b.
func (s *Surface) isOutlineEdge(a, b int) bool {
	shared := 0
	for _, tri := range s.ByVertex[a] {
		if tri.Contains(b) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}

// OutlinePoints converts a loop of vertex indices to lattice coordinates.
func (s *Surface) OutlinePoints(loop []int) []math.Vec2 {
	pts := make([]math.Vec2, len(loop))
	for i, v := range loop {
		pts[i] = s.Lattice.GridPoint(s.Mesh.Vertices[v])
	}
	return pts
}
