// Package export writes generated levels to interchange files for
// inspection: Wavefront OBJ meshes, PNG and BMP previews, GeoJSON outlines
// and plain-text grids.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/cavegen/internal/generator"
)

// Supported formats, also used as file extensions.
const (
	FormatOBJ     = "obj"
	FormatPNG     = "png"
	FormatBMP     = "bmp"
	FormatGeoJSON = "geojson"
	FormatASCII   = "txt"
)

// Formats lists every supported format.
var Formats = []string{FormatOBJ, FormatPNG, FormatBMP, FormatGeoJSON, FormatASCII}

// Options controls WriteLevel.
type Options struct {
	Dir     string
	Name    string
	Formats []string
	// PNGScale is the pixel size of one grid cell in image previews.
	PNGScale int
}

// WriteLevel writes lvl in every requested format to Dir/Name.<format> and
// returns the paths written.
func WriteLevel(lvl *generator.Level, opts Options) ([]string, error) {
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	var written []string
	for _, format := range opts.Formats {
		path := filepath.Join(opts.Dir, opts.Name+"."+format)
		var write func(io.Writer) error
		switch format {
		case FormatOBJ:
			write = func(w io.Writer) error { return WriteOBJ(w, lvl.Mesh, lvl.Walls) }
		case FormatPNG:
			write = func(w io.Writer) error { return WritePNG(w, RenderGrid(lvl.Grid, lvl.Passages, opts.PNGScale)) }
		case FormatBMP:
			write = func(w io.Writer) error { return WriteBMP(w, RenderGrid(lvl.Grid, lvl.Passages, opts.PNGScale)) }
		case FormatGeoJSON:
			write = func(w io.Writer) error { return WriteGeoJSON(w, lvl) }
		case FormatASCII:
			write = func(w io.Writer) error { return WriteASCII(w, lvl.Grid, lvl.Passages) }
		default:
			return written, fmt.Errorf("unknown export format %q", format)
		}
		if err := writeFile(path, write); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
