package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseRange(t *testing.T) {
	for name, n := range map[string]Noise2D{
		"simplex": SimplexNoise(42),
		"perlin":  PerlinNoise(42),
	} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := n(float64(i)*0.37, float64(i)*0.11)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		})
	}
}

func TestNoiseFill(t *testing.T) {
	for _, mode := range []FillMode{FillSimplex, FillPerlin} {
		t.Run(string(mode), func(t *testing.T) {
			a := Fill(mode, 40, 30, 45, "noise", DefaultNoiseScale)
			b := Fill(mode, 40, 30, 45, "noise", DefaultNoiseScale)
			require.True(t, a.Equal(b), "same seed must produce the same grid")

			for x := 0; x < a.Width; x++ {
				assert.Equal(t, Wall, a.At(x, 0))
				assert.Equal(t, Wall, a.At(x, a.Height-1))
			}

			open := Fill(mode, 12, 9, 0, "noise", DefaultNoiseScale)
			assert.Equal(t, 10*7, open.Count(Floor))

			solid := Fill(mode, 12, 9, 100, "noise", DefaultNoiseScale)
			assert.Equal(t, 12*9, solid.Count(Wall))
		})
	}
}

func TestFillRandomDefault(t *testing.T) {
	want := RandomFill(20, 20, 45, NewRand("same"))
	assert.True(t, want.Equal(Fill("", 20, 20, 45, "same", DefaultNoiseScale)))
	assert.True(t, want.Equal(Fill(FillRandom, 20, 20, 45, "same", DefaultNoiseScale)))
}

func TestFillModeValid(t *testing.T) {
	assert.True(t, FillMode("").Valid())
	assert.True(t, FillSimplex.Valid())
	assert.False(t, FillMode("worley").Valid())
}
