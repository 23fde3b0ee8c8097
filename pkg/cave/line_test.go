package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coord
		want     []Coord
	}{
		{
			name: "horizontal",
			from: Coord{0, 0}, to: Coord{4, 0},
			want: []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "vertical down",
			from: Coord{2, 3}, to: Coord{2, 0},
			want: []Coord{{2, 3}, {2, 2}, {2, 1}},
		},
		{
			name: "diagonal",
			from: Coord{0, 0}, to: Coord{3, 3},
			want: []Coord{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "shallow",
			from: Coord{0, 0}, to: Coord{4, 2},
			want: []Coord{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
		},
		{
			name: "steep swaps driving axis",
			from: Coord{0, 0}, to: Coord{2, 4},
			want: []Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "same tile",
			from: Coord{1, 1}, to: Coord{1, 1},
			want: []Coord{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.from, tt.to))
		})
	}
}

func TestLineLengthIsLongestAxis(t *testing.T) {
	from := Coord{5, 5}
	for _, to := range []Coord{{12, 7}, {1, 14}, {-3, 2}, {5, -6}} {
		line := Line(from, to)
		want := max(abs(to.X-from.X), abs(to.Y-from.Y))
		assert.Len(t, line, want)
		assert.Equal(t, from, line[0])
		// Consecutive points touch, diagonals included.
		for i := 1; i < len(line); i++ {
			assert.LessOrEqual(t, line[i-1].DistSq(line[i]), 2)
		}
	}
}

func TestCarveDiscClipsToBounds(t *testing.T) {
	g := NewFilledGrid(5, 5, Wall)
	CarveDisc(g, Coord{0, 0}, 1)

	assert.Equal(t, Floor, g.At(0, 0))
	assert.Equal(t, Floor, g.At(1, 0))
	assert.Equal(t, Floor, g.At(0, 1))
	assert.Equal(t, Wall, g.At(1, 1), "diagonal lies outside radius 1")
	assert.Equal(t, 3, g.Count(Floor))
}

func TestCarveDiscRadiusTwo(t *testing.T) {
	g := NewFilledGrid(7, 7, Wall)
	CarveDisc(g, Coord{3, 3}, 2)
	// dx²+dy² <= 4 covers 13 cells.
	assert.Equal(t, 13, g.Count(Floor))
	assert.Equal(t, Floor, g.At(1, 3))
	assert.Equal(t, Wall, g.At(1, 1))
}
