package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/cavegen/pkg/marching"
)

// WriteOBJ writes the surface and wall meshes as two Wavefront objects.
// Surface faces carry texture coordinates, wall faces carry normals.
// Indices are 1-based and shared across both objects.
func WriteOBJ(w io.Writer, surface *marching.Mesh, walls *marching.WallMesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# cavegen")
	fmt.Fprintln(bw, "o cave_surface")
	for _, v := range surface.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range surface.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i := 0; i+2 < len(surface.Indices); i += 3 {
		a, b, c := surface.Indices[i]+1, surface.Indices[i+1]+1, surface.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
	}

	if walls != nil && len(walls.Indices) > 0 {
		base := uint32(len(surface.Vertices))
		fmt.Fprintln(bw, "o cave_walls")
		for _, v := range walls.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, n := range walls.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for i := 0; i+2 < len(walls.Indices); i += 3 {
			a, b, c := walls.Indices[i]+1, walls.Indices[i+1]+1, walls.Indices[i+2]+1
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+base, a, b+base, b, c+base, c)
		}
	}
	return bw.Flush()
}
