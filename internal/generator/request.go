package generator

import (
	"fmt"

	"github.com/Faultbox/cavegen/pkg/cave"
	"github.com/Faultbox/cavegen/pkg/marching"
)

// Request describes one level to generate.
type Request struct {
	Width, Height int
	// BorderSize is the thickness of the wall ring added before meshing.
	BorderSize int
	CellSize   float32

	RegionSizeThreshold int
	FillPercent         int
	FillMode            cave.FillMode
	// NoiseScale is the noise sampling step per cell for noise fill modes.
	NoiseScale       float64
	Seed             string
	UseRandomSeed    bool
	SmoothIterations int
	PassageRadius    int
	ConnectStrategy  cave.Strategy

	WallHeight float32
	UVTiles    float32
	// SimplifyTolerance is the Douglas-Peucker tolerance for collision
	// rings in world units. Zero keeps every outline vertex.
	SimplifyTolerance float64
}

// DefaultRequest returns the stock cave settings.
func DefaultRequest() Request {
	return Request{
		Width:               80,
		Height:              60,
		BorderSize:          1,
		CellSize:            1,
		RegionSizeThreshold: 50,
		FillPercent:         47,
		FillMode:            cave.FillRandom,
		NoiseScale:          cave.DefaultNoiseScale,
		UseRandomSeed:       true,
		SmoothIterations:    12,
		PassageRadius:       1,
		ConnectStrategy:     cave.StrategyGreedy,
		WallHeight:          marching.DefaultWallHeight,
		UVTiles:             marching.DefaultUVTiles,
		SimplifyTolerance:   0.25,
	}
}

// Validate checks the request ranges. Every failure wraps
// cave.ErrInvalidConfig.
func (r Request) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", cave.ErrInvalidConfig, r.Width, r.Height)
	case r.BorderSize < 1:
		return fmt.Errorf("%w: border size %d, need at least 1", cave.ErrInvalidConfig, r.BorderSize)
	case r.CellSize <= 0:
		return fmt.Errorf("%w: cell size %g", cave.ErrInvalidConfig, r.CellSize)
	case r.RegionSizeThreshold < 0:
		return fmt.Errorf("%w: region size threshold %d", cave.ErrInvalidConfig, r.RegionSizeThreshold)
	case r.FillPercent < 0 || r.FillPercent > 100:
		return fmt.Errorf("%w: fill percent %d outside [0,100]", cave.ErrInvalidConfig, r.FillPercent)
	case !r.FillMode.Valid():
		return fmt.Errorf("%w: unknown fill mode %q", cave.ErrInvalidConfig, r.FillMode)
	case r.NoiseScale <= 0 && (r.FillMode == cave.FillSimplex || r.FillMode == cave.FillPerlin):
		return fmt.Errorf("%w: noise scale %g", cave.ErrInvalidConfig, r.NoiseScale)
	case r.SmoothIterations < 0:
		return fmt.Errorf("%w: smooth iterations %d", cave.ErrInvalidConfig, r.SmoothIterations)
	case r.PassageRadius < 0:
		return fmt.Errorf("%w: passage radius %d", cave.ErrInvalidConfig, r.PassageRadius)
	case !r.ConnectStrategy.Valid():
		return fmt.Errorf("%w: unknown connect strategy %q", cave.ErrInvalidConfig, r.ConnectStrategy)
	case r.WallHeight < 0:
		return fmt.Errorf("%w: wall height %g", cave.ErrInvalidConfig, r.WallHeight)
	case r.UVTiles < 0:
		return fmt.Errorf("%w: uv tiles %g", cave.ErrInvalidConfig, r.UVTiles)
	case r.SimplifyTolerance < 0:
		return fmt.Errorf("%w: simplify tolerance %g", cave.ErrInvalidConfig, r.SimplifyTolerance)
	}
	return nil
}
