package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Faultbox/cavegen/internal/export"
	"github.com/Faultbox/cavegen/internal/generator"
)

func newSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	req := generator.DefaultRequest()
	req.Width, req.Height = 16, 12
	req.FillPercent = 0
	req.Seed = "first"
	req.UseRandomSeed = false
	req.RegionSizeThreshold = 5

	var out bytes.Buffer
	return &session{
		gen: generator.New(zap.NewNop()),
		req: req,
		out: &out,
		opts: export.Options{
			Dir:      t.TempDir(),
			Name:     "cave",
			Formats:  []string{export.FormatASCII},
			PNGScale: 1,
		},
	}, &out
}

func TestSessionCommands(t *testing.T) {
	s, out := newSession(t)

	err := s.run(context.Background(), strings.NewReader("s crypt\ns\nbogus\nw\nq\ns never\n"))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "first")
	assert.Contains(t, text, "crypt")
	assert.Contains(t, text, "usage: s <seed>")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.NotContains(t, text, "never", "input after q is ignored")

	require.NotNil(t, s.last)
	assert.Equal(t, "crypt", s.last.Seed)
	assert.FileExists(t, filepath.Join(s.opts.Dir, "cave_crypt.txt"))
}

func TestSessionRandomRegenerate(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.run(context.Background(), strings.NewReader("r\n")))
	require.NotNil(t, s.last)
	assert.NotEqual(t, "first", s.last.Seed)
	assert.False(t, s.req.UseRandomSeed, "session defaults are not changed")
}

func TestSessionReportsErrors(t *testing.T) {
	s, out := newSession(t)
	s.req.FillPercent = 100

	require.NoError(t, s.run(context.Background(), strings.NewReader("w\n")))
	assert.Nil(t, s.last)
	assert.Contains(t, out.String(), "no floor region survived pruning")
	assert.Contains(t, out.String(), "no level generated yet")
}

func TestSessionStopsOnCancel(t *testing.T) {
	s, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.run(ctx, strings.NewReader("s other\n")))
	assert.Nil(t, s.last, "cancelled before the first level")
}

func TestPrintSummary(t *testing.T) {
	s, out := newSession(t)
	require.NoError(t, s.regenerate(context.Background(), "sum", false))
	out.Reset()

	printSummary(out, s.last)
	assert.Contains(t, out.String(), "Seed:")
	assert.Contains(t, out.String(), "sum")
	assert.Contains(t, out.String(), "16x12")
}

func TestPrintSummaryGroupsThousands(t *testing.T) {
	s, out := newSession(t)
	require.NoError(t, s.regenerate(context.Background(), "big", false))
	out.Reset()

	s.last.Stats.Triangles = 12345
	printSummary(out, s.last)
	assert.Contains(t, out.String(), "12,345 triangles")
}
