package cave

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// NewSeed returns a fresh random seed string.
func NewSeed() string {
	return uuid.NewString()
}

// SeedFromString hashes a seed string into a PRNG seed (FNV-1a, 64 bit).
func SeedFromString(seed string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum64())
}

// NewRand returns the pseudo-random stream for a seed string.
func NewRand(seed string) *rand.Rand {
	return rand.New(rand.NewSource(SeedFromString(seed)))
}

// RandomFill returns a width×height grid whose outer ring is wall and whose
// interior cells are wall with probability fillPercent/100.
// Cells are drawn column by column so a seed always yields the same grid.
func RandomFill(width, height, fillPercent int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				g.Set(x, y, Wall)
				continue
			}
			if rng.Intn(100) < fillPercent {
				g.Set(x, y, Wall)
			}
		}
	}
	return g
}
