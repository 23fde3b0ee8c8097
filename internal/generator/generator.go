// Package generator runs the full cave pipeline: fill, smoothing, room
// processing, bordering, triangulation, outline tracing and wall extrusion.
package generator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/Faultbox/cavegen/internal/logger"
	"github.com/Faultbox/cavegen/pkg/cave"
	"github.com/Faultbox/cavegen/pkg/marching"
	"github.com/Faultbox/cavegen/pkg/math"
)

// Level is everything produced by one generation run.
type Level struct {
	Request Request
	// Seed is the seed actually used, fresh when the request asked for a
	// random one.
	Seed string

	// Grid is the processed map without its border.
	Grid     *cave.Grid
	Bordered *cave.Grid
	Rooms    []*cave.Room
	Graph    *cave.RoomGraph
	Passages []cave.Passage

	Surface *marching.Surface
	Mesh    *marching.Mesh
	Walls   *marching.WallMesh
	// Outlines are closed loops of Mesh vertex indices.
	Outlines [][]int
	// OutlinePoints holds the same loops in bordered-grid coordinates.
	OutlinePoints  [][]math.Vec2
	CollisionRings []orb.Ring

	Stats Stats
}

// StageTiming is the wall time of one pipeline stage.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Stats summarises a run.
type Stats struct {
	Rooms               int
	Passages            int
	RemovedWallRegions  int
	RemovedFloorRegions int
	FloorTiles          int
	Vertices            int
	Triangles           int
	Outlines            int
	WallQuads           int
	ConfigCounts        [16]int
	// WalkDistances holds the on-foot step count from the main room to each
	// room; MaxWalk is the largest of them.
	WalkDistances []int
	MaxWalk       int
	Stages        []StageTiming
	Total         time.Duration
}

// Generator runs requests one at a time. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	log *zap.Logger
}

// New returns a generator logging to log, or to the global logger when log
// is nil.
func New(log *zap.Logger) *Generator {
	if log == nil {
		log = logger.Named("generator")
	}
	return &Generator{log: log}
}

// Generate validates req and builds a level. ctx is checked between stages;
// a cancelled run returns no level.
func (g *Generator) Generate(ctx context.Context, req Request) (*Level, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	lvl := &Level{Request: req, Seed: req.Seed}
	if req.UseRandomSeed {
		lvl.Seed = cave.NewSeed()
	}
	log := g.log.With(zap.String("seed", lvl.Seed))
	started := time.Now()

	run := func(name string, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation stopped before %s: %w", name, err)
		}
		t := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		d := time.Since(t)
		lvl.Stats.Stages = append(lvl.Stats.Stages, StageTiming{Stage: name, Duration: d})
		log.Debug("stage done", zap.String("stage", name), zap.Duration("took", d))
		return nil
	}

	var layout *cave.Layout
	stages := []struct {
		name string
		fn   func() error
	}{
		{"fill", func() error {
			lvl.Grid = cave.Fill(req.FillMode, req.Width, req.Height, req.FillPercent, lvl.Seed, req.NoiseScale)
			return nil
		}},
		{"smooth", func() error {
			lvl.Grid = cave.Smooth(lvl.Grid, req.SmoothIterations)
			return nil
		}},
		{"rooms", func() error {
			var err error
			layout, err = cave.Process(lvl.Grid, cave.Params{
				RegionSizeThreshold: req.RegionSizeThreshold,
				PassageRadius:       req.PassageRadius,
				Strategy:            req.ConnectStrategy,
			})
			return err
		}},
		{"border", func() error {
			lvl.Bordered = lvl.Grid.Bordered(req.BorderSize)
			return nil
		}},
		{"triangulate", func() error {
			lvl.Surface = marching.Triangulate(lvl.Bordered, req.CellSize, req.UVTiles)
			lvl.Mesh = lvl.Surface.Mesh
			return nil
		}},
		{"outline", func() error {
			lvl.Outlines = lvl.Surface.Outlines()
			lvl.OutlinePoints = make([][]math.Vec2, len(lvl.Outlines))
			for i, loop := range lvl.Outlines {
				lvl.OutlinePoints[i] = lvl.Surface.OutlinePoints(loop)
			}
			return nil
		}},
		{"walls", func() error {
			lvl.Walls = marching.ExtrudeWalls(lvl.Mesh.Vertices, lvl.Outlines, req.WallHeight)
			return nil
		}},
		{"simplify", func() error {
			lvl.CollisionRings = lvl.Surface.CollisionRings(lvl.Outlines, req.SimplifyTolerance)
			return nil
		}},
	}

	for _, s := range stages {
		if err := run(s.name, s.fn); err != nil {
			log.Warn("generation failed", zap.Error(err))
			return nil, err
		}
	}

	lvl.Rooms = layout.Rooms
	lvl.Graph = layout.Graph
	lvl.Passages = layout.Passages
	lvl.Stats.fill(lvl, layout)
	lvl.Stats.Total = time.Since(started)

	log.Info("level generated",
		zap.Int("width", req.Width),
		zap.Int("height", req.Height),
		zap.Int("rooms", lvl.Stats.Rooms),
		zap.Int("passages", lvl.Stats.Passages),
		zap.Int("vertices", lvl.Stats.Vertices),
		zap.Int("triangles", lvl.Stats.Triangles),
		zap.Int("outlines", lvl.Stats.Outlines),
		zap.Int("max_walk", lvl.Stats.MaxWalk),
		zap.Duration("took", lvl.Stats.Total),
	)
	return lvl, nil
}

func (s *Stats) fill(lvl *Level, layout *cave.Layout) {
	s.Rooms = len(layout.Rooms)
	s.Passages = len(layout.Passages)
	s.RemovedWallRegions = layout.RemovedWallRegions
	s.RemovedFloorRegions = layout.RemovedFloorRegions
	s.FloorTiles = lvl.Grid.Count(cave.Floor)
	s.Vertices = len(lvl.Mesh.Vertices)
	s.Triangles = lvl.Mesh.TriangleCount()
	s.Outlines = len(lvl.Outlines)
	s.WallQuads = len(lvl.Walls.Indices) / 6
	s.ConfigCounts = lvl.Surface.ConfigCounts
	s.WalkDistances = cave.WalkDistances(lvl.Grid, layout.Rooms)
	for _, d := range s.WalkDistances {
		s.MaxWalk = max(s.MaxWalk, d)
	}
}
