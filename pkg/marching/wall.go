package marching

import (
	"github.com/Faultbox/cavegen/pkg/math"
)

// DefaultWallHeight is how far walls drop below the surface.
const DefaultWallHeight = 5

// ExtrudeWalls drops a vertical quad below every outline segment.
// Quad vertices are {left, right, left-down, right-down}, wound (0,2,3) and
// (3,1,0).
func ExtrudeWalls(vertices []math.Vec3, outlines [][]int, height float32) *WallMesh {
	w := &WallMesh{}
	drop := math.Up.Scale(height)

	for _, loop := range outlines {
		for i := 0; i+1 < len(loop); i++ {
			left := vertices[loop[i]]
			right := vertices[loop[i+1]]
			normal := right.Sub(left).Cross(math.Up).Normalize()

			base := uint32(len(w.Vertices))
			w.Vertices = append(w.Vertices,
				left,
				right,
				left.Sub(drop),
				right.Sub(drop),
			)
			w.Normals = append(w.Normals, normal, normal, normal, normal)
			w.Indices = append(w.Indices,
				base+0, base+2, base+3,
				base+3, base+1, base+0,
			)
		}
	}
	return w
}
