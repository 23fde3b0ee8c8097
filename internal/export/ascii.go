package export

import (
	"bufio"
	"io"

	"github.com/Faultbox/cavegen/pkg/cave"
)

// WriteASCII writes g one row per line, y = 0 first: '#' wall, '.' floor
// and '+' for floor on a carved passage line. The output parses back with
// cave.ParseGrid.
func WriteASCII(w io.Writer, g *cave.Grid, passages []cave.Passage) error {
	rows := make([][]byte, g.Height)
	for y := range rows {
		rows[y] = make([]byte, g.Width)
		for x := range rows[y] {
			if g.At(x, y) == cave.Wall {
				rows[y][x] = '#'
			} else {
				rows[y][x] = '.'
			}
		}
	}
	for _, p := range passages {
		for _, c := range p.Line {
			if g.InBounds(c.X, c.Y) && rows[c.Y][c.X] == '.' {
				rows[c.Y][c.X] = '+'
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
