package marching

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/Faultbox/cavegen/pkg/math"
)

// CollisionRing returns an outline as a closed ring in the XZ plane,
// reduced with Douglas-Peucker at tolerance world units. A tolerance of zero
// or less keeps every vertex. Simplification never returns fewer than four
// points (a closed triangle); the unsimplified ring is kept instead.
func CollisionRing(vertices []math.Vec3, loop []int, tolerance float64) orb.Ring {
	ring := make(orb.Ring, len(loop))
	for i, v := range loop {
		p := vertices[v]
		ring[i] = orb.Point{float64(p.X), float64(p.Z)}
	}
	if tolerance <= 0 || len(ring) < 4 {
		return ring
	}

	ls := orb.LineString(ring)
	simplified, ok := simplify.DouglasPeucker(tolerance).Simplify(ls.Clone()).(orb.LineString)
	if !ok || len(simplified) < 4 {
		return ring
	}
	return orb.Ring(simplified)
}

// CollisionRings simplifies every outline of the surface.
func (s *Surface) CollisionRings(outlines [][]int, tolerance float64) []orb.Ring {
	rings := make([]orb.Ring, 0, len(outlines))
	for _, loop := range outlines {
		rings = append(rings, CollisionRing(s.Mesh.Vertices, loop, tolerance))
	}
	return rings
}
