package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/cavegen/internal/export"
	"github.com/Faultbox/cavegen/internal/generator"
	"github.com/Faultbox/cavegen/internal/logger"
)

// session regenerates levels on request, like pressing the regenerate key
// in a viewer. Every command re-runs the whole pipeline.
type session struct {
	gen  *generator.Generator
	req  generator.Request
	out  io.Writer
	opts export.Options
	// last is the most recent successful level.
	last *generator.Level
}

// run reads commands from in until q, EOF or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "r: regenerate with a fresh seed, s <seed>: regenerate with seed, w: write files, q: quit")
	if err := s.regenerate(ctx, s.req.Seed, s.req.UseRandomSeed); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		var err error
		switch cmd {
		case "", "r":
			err = s.regenerate(ctx, "", true)
		case "s":
			if arg = strings.TrimSpace(arg); arg == "" {
				fmt.Fprintln(s.out, "usage: s <seed>")
				continue
			}
			err = s.regenerate(ctx, arg, false)
		case "w":
			err = s.write()
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command %q\n", cmd)
			continue
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *session) regenerate(ctx context.Context, seed string, random bool) error {
	req := s.req
	req.Seed = seed
	req.UseRandomSeed = random

	lvl, err := s.gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	s.last = lvl
	if err := export.WriteASCII(s.out, lvl.Grid, lvl.Passages); err != nil {
		return err
	}
	printSummary(s.out, lvl)
	return nil
}

func (s *session) write() error {
	if s.last == nil {
		return fmt.Errorf("no level generated yet")
	}
	opts := s.opts
	opts.Name = fmt.Sprintf("%s_%s", opts.Name, s.last.Seed)
	paths, err := export.WriteLevel(s.last, opts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("wrote", zap.String("path", p))
		fmt.Fprintf(s.out, "wrote %s\n", p)
	}
	return nil
}

func printSummary(w io.Writer, lvl *generator.Level) {
	st := lvl.Stats
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p.Fprintf(tw, "Seed:\t%s\n", lvl.Seed)
	p.Fprintf(tw, "Size:\t%dx%d\n", lvl.Grid.Width, lvl.Grid.Height)
	p.Fprintf(tw, "Rooms:\t%d (%d passages, longest walk %d)\n", st.Rooms, st.Passages, st.MaxWalk)
	p.Fprintf(tw, "Pruned:\t%d wall, %d floor regions\n", st.RemovedWallRegions, st.RemovedFloorRegions)
	p.Fprintf(tw, "Mesh:\t%d vertices, %d triangles\n", st.Vertices, st.Triangles)
	p.Fprintf(tw, "Walls:\t%d outlines, %d quads\n", st.Outlines, st.WallQuads)
	p.Fprintf(tw, "Time:\t%s\n", st.Total)
	tw.Flush()
}
