package cave

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// FillMode selects how the initial grid is seeded.
type FillMode string

// Fill modes.
const (
	// FillRandom draws every interior cell independently.
	FillRandom FillMode = "random"
	// FillSimplex thresholds OpenSimplex noise, giving larger blobs.
	FillSimplex FillMode = "simplex"
	// FillPerlin thresholds Perlin noise.
	FillPerlin FillMode = "perlin"
)

// DefaultNoiseScale is the noise sampling step per cell.
const DefaultNoiseScale = 0.08

// Valid reports whether m names a known mode. Empty means random.
func (m FillMode) Valid() bool {
	return m == "" || m == FillRandom || m == FillSimplex || m == FillPerlin
}

// Noise2D samples coherent noise, returning values in [0, 1].
type Noise2D func(x, y float64) float64

// SimplexNoise returns normalised OpenSimplex noise for seed.
func SimplexNoise(seed int64) Noise2D {
	n := opensimplex.NewNormalized(seed)
	return func(x, y float64) float64 {
		return unit(n.Eval2(x, y))
	}
}

// PerlinNoise returns Perlin noise for seed mapped from [-1, 1] to [0, 1].
func PerlinNoise(seed int64) Noise2D {
	p := perlin.NewPerlin(2, 2, 3, seed)
	return func(x, y float64) float64 {
		return unit((p.Noise2D(x, y) + 1) / 2)
	}
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}

// NoiseFill returns a width×height grid whose outer ring is wall and whose
// interior cells are wall where noise sampled at (x·scale, y·scale) falls
// below fillPercent/100.
func NoiseFill(width, height, fillPercent int, noise Noise2D, scale float64) *Grid {
	g := NewGrid(width, height)
	threshold := float64(fillPercent) / 100
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			switch {
			case x == 0 || x == width-1 || y == 0 || y == height-1:
				g.Set(x, y, Wall)
			case fillPercent >= 100:
				g.Set(x, y, Wall)
			case noise(float64(x)*scale, float64(y)*scale) < threshold:
				g.Set(x, y, Wall)
			}
		}
	}
	return g
}

// Fill seeds a grid with the given mode. Noise modes derive their noise seed
// from the same seed string as the random stream.
func Fill(mode FillMode, width, height, fillPercent int, seed string, scale float64) *Grid {
	switch mode {
	case FillSimplex:
		return NoiseFill(width, height, fillPercent, SimplexNoise(SeedFromString(seed)), scale)
	case FillPerlin:
		return NoiseFill(width, height, fillPercent, PerlinNoise(SeedFromString(seed)), scale)
	default:
		return RandomFill(width, height, fillPercent, NewRand(seed))
	}
}
