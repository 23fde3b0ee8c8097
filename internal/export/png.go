package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/Faultbox/cavegen/pkg/cave"
)

// Preview palette.
var (
	WallColor     = color.RGBA{38, 36, 44, 255}
	FloorColor    = color.RGBA{214, 204, 180, 255}
	CorridorColor = color.RGBA{196, 144, 96, 255}
)

// RenderGrid draws g with scale×scale pixels per cell. Image rows are
// flipped so y = 0 is at the bottom, matching the mesh's +Z forward.
// Floor cells on a carved passage line are tinted.
func RenderGrid(g *cave.Grid, passages []cave.Passage, scale int) *image.RGBA {
	corridor := make([]bool, len(g.Cells))
	for _, p := range passages {
		for _, c := range p.Line {
			if g.InBounds(c.X, c.Y) {
				corridor[c.Y*g.Width+c.X] = true
			}
		}
	}

	src := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			col := WallColor
			if g.At(x, y) == cave.Floor {
				col = FloorColor
				if corridor[y*g.Width+x] {
					col = CorridorColor
				}
			}
			src.SetRGBA(x, g.Height-1-y, col)
		}
	}
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteBMP encodes img as an uncompressed BMP.
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
