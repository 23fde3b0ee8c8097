package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Faultbox/cavegen/internal/generator"
	"github.com/Faultbox/cavegen/pkg/cave"
	"github.com/Faultbox/cavegen/pkg/marching"
)

// LevelFeatures builds a feature collection in world XZ coordinates: one
// polygon per collision ring, one line per carved passage and a point per
// room centre.
func LevelFeatures(lvl *generator.Level) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"seed":   lvl.Seed,
		"width":  lvl.Request.Width,
		"height": lvl.Request.Height,
	}

	for i, ring := range lvl.CollisionRings {
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["kind"] = "outline"
		f.Properties["loop"] = i
		f.Properties["vertices"] = len(lvl.Outlines[i])
		fc.Append(f)
	}

	lat := lvl.Surface.Lattice
	border := lvl.Request.BorderSize
	for _, p := range lvl.Passages {
		line := make(orb.LineString, 0, len(p.Line)+1)
		for _, c := range p.Line {
			line = append(line, worldPoint(lat, border, c))
		}
		line = append(line, worldPoint(lat, border, p.TileB))
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "passage"
		f.Properties["room_a"] = p.RoomA
		f.Properties["room_b"] = p.RoomB
		fc.Append(f)
	}

	for _, r := range lvl.Rooms {
		var mp orb.MultiPoint
		for _, t := range r.Tiles {
			mp = append(mp, worldPoint(lat, border, t))
		}
		f := geojson.NewFeature(mp.Bound().Center())
		f.Properties["kind"] = "room"
		f.Properties["index"] = r.Index
		f.Properties["size"] = r.Size()
		f.Properties["main"] = r.IsMain
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes LevelFeatures(lvl) as JSON.
func WriteGeoJSON(w io.Writer, lvl *generator.Level) error {
	data, err := LevelFeatures(lvl).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// worldPoint maps a cell of the unbordered grid to the XZ position of its
// control node.
func worldPoint(l *marching.Lattice, border int, c cave.Coord) orb.Point {
	x := -l.WorldWidth/2 + float32(c.X+border)*l.CellSize + l.CellSize/2
	z := -l.WorldHeight/2 + float32(c.Y+border)*l.CellSize + l.CellSize/2
	return orb.Point{float64(x), float64(z)}
}
