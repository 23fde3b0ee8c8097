package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cavegen/internal/export"
	"github.com/Faultbox/cavegen/internal/generator"
	"github.com/Faultbox/cavegen/internal/logger"
)

func cmdGenerate(ctx context.Context, args []string) error {
	cfg, _, err := setup("generate", args, nil)
	if err != nil {
		return err
	}

	lvl, err := generator.New(nil).Generate(ctx, cfg.ToRequest())
	if err != nil {
		return err
	}

	paths, err := export.WriteLevel(lvl, cfg.ExportOptions())
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("wrote", zap.String("path", p))
	}
	printSummary(os.Stdout, lvl)
	return nil
}

func cmdPreview(ctx context.Context, args []string) error {
	var corridors bool
	cfg, _, err := setup("preview", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&corridors, "corridors", true, "Mark carved passages with '+'")
	})
	if err != nil {
		return err
	}

	lvl, err := generator.New(nil).Generate(ctx, cfg.ToRequest())
	if err != nil {
		return err
	}

	passages := lvl.Passages
	if !corridors {
		passages = nil
	}
	if err := export.WriteASCII(os.Stdout, lvl.Grid, passages); err != nil {
		return err
	}
	printSummary(os.Stdout, lvl)
	return nil
}

func cmdInteractive(ctx context.Context, args []string) error {
	cfg, _, err := setup("interactive", args, nil)
	if err != nil {
		return err
	}

	s := &session{
		gen:  generator.New(nil),
		req:  cfg.ToRequest(),
		out:  os.Stdout,
		opts: cfg.ExportOptions(),
	}
	return s.run(ctx, os.Stdin)
}

func cmdConfig(args []string) error {
	var save bool
	cfg, _, err := setup("config", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&save, "save", false, "Write the effective config to the user config dir")
	})
	if err != nil {
		return err
	}

	if save {
		path, err := cfg.Save()
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
