// Package config handles cavegen configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/cavegen/internal/export"
	"github.com/Faultbox/cavegen/internal/generator"
	"github.com/Faultbox/cavegen/internal/logger"
	"github.com/Faultbox/cavegen/pkg/cave"
)

// Config holds all cavegen settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig mirrors generator.Request.
type GenerationConfig struct {
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	BorderSize          int     `yaml:"border_size"`
	CellSize            float32 `yaml:"cell_size"`
	RegionSizeThreshold int     `yaml:"region_size_threshold"`
	FillPercent         int     `yaml:"fill_percent"`
	FillMode            string  `yaml:"fill_mode"`
	NoiseScale          float64 `yaml:"noise_scale"`
	Seed                string  `yaml:"seed"`
	UseRandomSeed       bool    `yaml:"use_random_seed"`
	SmoothIterations    int     `yaml:"smooth_iterations"`
	PassageRadius       int     `yaml:"passage_radius"`
	ConnectStrategy     string  `yaml:"connect_strategy"`
	WallHeight          float32 `yaml:"wall_height"`
	UVTiles             float32 `yaml:"uv_tiles"`
	SimplifyTolerance   float64 `yaml:"simplify_tolerance"`
}

// OutputConfig controls which files a run writes.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Name    string   `yaml:"name"`    // Base file name, extension added per format
	Formats []string `yaml:"formats"` // Any of obj, png, geojson, txt
	// PNGScale is the pixel size of one grid cell in previews.
	PNGScale int `yaml:"png_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with the stock cave settings.
func Default() *Config {
	req := generator.DefaultRequest()
	file := logger.DefaultFileConfig("")
	return &Config{
		Generation: GenerationConfig{
			Width:               req.Width,
			Height:              req.Height,
			BorderSize:          req.BorderSize,
			CellSize:            req.CellSize,
			RegionSizeThreshold: req.RegionSizeThreshold,
			FillPercent:         req.FillPercent,
			FillMode:            string(req.FillMode),
			NoiseScale:          req.NoiseScale,
			Seed:                req.Seed,
			UseRandomSeed:       req.UseRandomSeed,
			SmoothIterations:    req.SmoothIterations,
			PassageRadius:       req.PassageRadius,
			ConnectStrategy:     string(req.ConnectStrategy),
			WallHeight:          req.WallHeight,
			UVTiles:             req.UVTiles,
			SimplifyTolerance:   req.SimplifyTolerance,
		},
		Output: OutputConfig{
			Dir:      ".",
			Name:     "cave",
			Formats:  []string{export.FormatOBJ, export.FormatPNG, export.FormatGeoJSON},
			PNGScale: 4,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	}
}

// ToRequest converts the generation section to a generator request.
func (c *Config) ToRequest() generator.Request {
	g := c.Generation
	return generator.Request{
		Width:               g.Width,
		Height:              g.Height,
		BorderSize:          g.BorderSize,
		CellSize:            g.CellSize,
		RegionSizeThreshold: g.RegionSizeThreshold,
		FillPercent:         g.FillPercent,
		FillMode:            cave.FillMode(g.FillMode),
		NoiseScale:          g.NoiseScale,
		Seed:                g.Seed,
		UseRandomSeed:       g.UseRandomSeed,
		SmoothIterations:    g.SmoothIterations,
		PassageRadius:       g.PassageRadius,
		ConnectStrategy:     cave.Strategy(g.ConnectStrategy),
		WallHeight:          g.WallHeight,
		UVTiles:             g.UVTiles,
		SimplifyTolerance:   g.SimplifyTolerance,
	}
}

// LoggerOptions converts the logging section for logger.InitWithOptions.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{
		Level:   c.Logging.Level,
		Format:  c.Logging.Format,
		Console: true,
	}
	if c.Logging.LogFile != "" {
		opts.File = logger.FileConfig{
			Path:       c.Logging.LogFile,
			MaxSizeMB:  c.Logging.MaxSizeMB,
			MaxBackups: c.Logging.MaxBackups,
			MaxAgeDays: c.Logging.MaxAgeDays,
			Compress:   c.Logging.Compress,
		}
	}
	return opts
}

// Validate reports every problem found in c, joined.
func (c *Config) Validate() error {
	var errs []error
	if err := c.ToRequest().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("generation: %w", err))
	}
	for _, f := range c.Output.Formats {
		if !slices.Contains(export.Formats, f) {
			errs = append(errs, fmt.Errorf("output: unknown format %q", f))
		}
	}
	if c.Output.Name == "" {
		errs = append(errs, errors.New("output: empty file name"))
	}
	if c.Output.PNGScale < 1 {
		errs = append(errs, fmt.Errorf("output: png scale %d, need at least 1", c.Output.PNGScale))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	return errors.Join(errs...)
}

// ExportOptions converts the output section for export.WriteLevel.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Dir:      c.Output.Dir,
		Name:     c.Output.Name,
		Formats:  c.Output.Formats,
		PNGScale: c.Output.PNGScale,
	}
}
