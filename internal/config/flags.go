package config

import "flag"

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config   string
	Debug    bool
	Seed     string
	Random   bool
	Width    int
	Height   int
	Fill     int
	Mode     string
	Strategy string
	Out      string
}

// RegisterFlags binds the override flags to fs and returns their targets.
// Each subcommand registers on its own flag set.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Seed, "seed", "", "Seed string (disables random seeding)")
	fs.BoolVar(&f.Random, "random", false, "Use a fresh random seed")
	fs.IntVar(&f.Width, "width", 0, "Map width in cells")
	fs.IntVar(&f.Height, "height", 0, "Map height in cells")
	fs.IntVar(&f.Fill, "fill", -1, "Random fill percent (0-100)")
	fs.StringVar(&f.Mode, "mode", "", "Fill mode: random, simplex or perlin")
	fs.StringVar(&f.Strategy, "strategy", "", "Room connection strategy: greedy or mst")
	fs.StringVar(&f.Out, "out", "", "Output directory")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Seed != "" {
		cfg.Generation.Seed = f.Seed
		cfg.Generation.UseRandomSeed = false
	}
	if f.Random {
		cfg.Generation.UseRandomSeed = true
	}
	if f.Width > 0 {
		cfg.Generation.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Generation.Height = f.Height
	}
	if f.Fill >= 0 {
		cfg.Generation.FillPercent = f.Fill
	}
	if f.Mode != "" {
		cfg.Generation.FillMode = f.Mode
	}
	if f.Strategy != "" {
		cfg.Generation.ConnectStrategy = f.Strategy
	}
	if f.Out != "" {
		cfg.Output.Dir = f.Out
	}
}
