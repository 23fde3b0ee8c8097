// cavegen generates procedural cave levels and exports their meshes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/cavegen/internal/config"
	"github.com/Faultbox/cavegen/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case "generate", "gen":
		err = cmdGenerate(ctx, args)
	case "preview":
		err = cmdPreview(ctx, args)
	case "interactive", "i":
		err = cmdInteractive(ctx, args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cavegen - procedural cave generator

Usage:
  cavegen <command> [options]

Commands:
  generate      Generate a level and write the configured output files
  preview       Generate a level and print its grid to stdout
  interactive   Regenerate from stdin: r (new seed), s <seed>, q
  config        Print the effective config (-save writes it to the config dir)

Options (all commands):
  -config <path>   Config file (default ./cavegen.yaml or the user config dir)
  -seed <string>   Seed string, disables random seeding
  -random          Use a fresh random seed
  -width, -height  Map size in cells
  -fill <0-100>    Random fill percent
  -mode <m>        Fill mode: random, simplex or perlin
  -strategy <s>    Room connection: greedy or mst
  -out <dir>       Output directory
  -debug           Debug logging

Examples:
  cavegen generate -seed crypt -width 120 -height 80
  cavegen preview -random -fill 50
  cavegen interactive -out ./caves`)
}

// setup parses the shared flags, loads config and starts the logger.
func setup(name string, args []string, extra func(*flag.FlagSet)) (*config.Config, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.InitWithOptions(cfg.LoggerOptions()); err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("config: %+v", cfg)
	logger.Debug("command", zap.String("name", name), zap.Strings("args", fs.Args()))
	return cfg, fs, nil
}
