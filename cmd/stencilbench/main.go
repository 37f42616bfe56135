// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command stencilbench times every access-pattern variant of the blur,
// broadcast and grayscale kernels over one image and prints a table.
//
// Usage:
//
//	stencilbench [-input photo.png] [-variant all] [-radius 3] [-passes 5]
//
// Without -input a synthetic 500x286 gradient is used.
package main

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/stencilbench"
	"github.com/gogpu/stencilbench/internal/shader"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("stencilbench: %v", err)
	}
}

// options holds the parsed command line.
type options struct {
	input    string
	width    int
	height   int
	variant  string
	out      string
	grayOut  string
	spirvDir string
	verbose  bool
	cfg      stencilbench.Config
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("stencilbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := stencilbench.DefaultConfig()
	var (
		o    options
		edge string
	)
	fs.StringVar(&o.input, "input", "", "input image (PNG, JPEG, BMP, TIFF, WebP); synthetic gradient if empty")
	fs.IntVar(&o.width, "width", 500, "synthetic image width")
	fs.IntVar(&o.height, "height", 286, "synthetic image height")
	fs.IntVar(&o.cfg.BlurRadius, "radius", def.BlurRadius, "blur and broadcast window radius")
	fs.IntVar(&o.cfg.PiIterations, "pi", def.PiIterations, "scalar series iterations")
	fs.StringVar(&o.variant, "variant", "all", "variant name, family (blur, broadcast, gray, series) or all")
	fs.StringVar(&edge, "edge", def.Edge.String(), "edge policy: clamp, wrap or reject")
	fs.IntVar(&o.cfg.Workers, "workers", def.Workers, "dispatch workers (0 = GOMAXPROCS)")
	fs.IntVar(&o.cfg.Passes, "passes", 3, "timed passes per variant")
	fs.StringVar(&o.out, "out", "", "write the last RGBA output to this PNG")
	fs.StringVar(&o.grayOut, "gray-out", "", "write the last gray output to this PNG")
	fs.StringVar(&o.spirvDir, "spirv", "", "write compiled GPU kernels to this directory")
	fs.BoolVar(&o.verbose, "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	p, err := stencilbench.ParseEdgePolicy(edge)
	if err != nil {
		return o, err
	}
	o.cfg.Edge = p
	return o, nil
}

// selectVariants resolves a -variant value.
func selectVariants(s string) ([]stencilbench.Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return stencilbench.Variants(), nil
	}

	var out []stencilbench.Variant
	for _, v := range stencilbench.Variants() {
		if v.Family().String() == s {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		return out, nil
	}

	v, err := stencilbench.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []stencilbench.Variant{v}, nil
}

// synthetic builds a gradient test image.
func synthetic(w, h int) (*stencilbench.PixelGrid, error) {
	g, err := stencilbench.NewPixelGrid(w, h, stencilbench.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := stencilbench.Color{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x ^ y) & 0xff),
				A: 255,
			}
			if err := g.SetRGBA(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.verbose {
		stencilbench.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	variants, err := selectVariants(o.variant)
	if err != nil {
		return err
	}

	var input *stencilbench.PixelGrid
	if o.input != "" {
		input, err = stencilbench.LoadImage(o.input)
	} else {
		input, err = synthetic(o.width, o.height)
	}
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	ctx, err := stencilbench.NewContext(input, o.cfg)
	if err != nil {
		return err
	}
	defer ctx.Close()

	summaries := make([]stencilbench.Summary, 0, len(variants))
	for _, v := range variants {
		s, err := ctx.Bench(v, 0)
		if err != nil {
			return err
		}
		summaries = append(summaries, s)
	}

	if err := writeReport(stdout, ctx.Config(), summaries); err != nil {
		return err
	}

	if o.out != "" {
		if err := ctx.Output().SavePNG(o.out); err != nil {
			return fmt.Errorf("save output: %w", err)
		}
	}
	if o.grayOut != "" {
		if err := ctx.Gray().SavePNG(o.grayOut); err != nil {
			return fmt.Errorf("save gray output: %w", err)
		}
	}
	if o.spirvDir != "" {
		if err := writePlans(o.spirvDir, ctx); err != nil {
			return err
		}
		if err := writeSPIRV(o.spirvDir); err != nil {
			return err
		}
	}
	return nil
}

// writeReport prints one row per variant with grouped numbers.
func writeReport(w io.Writer, cfg stencilbench.Config, summaries []stencilbench.Summary) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "image %dx%d, radius %d, edge %v, passes %d\n\n",
		cfg.Width, cfg.Height, cfg.BlurRadius, cfg.Edge, max(cfg.Passes, 1))
	fmt.Fprintln(tw, "variant\tfamily\tmean µs\tmedian µs\tstddev µs\tns/pixel\tresult\t")
	for _, s := range summaries {
		result := ""
		if s.Variant == stencilbench.Series {
			result = p.Sprintf("%.10f", s.Last.Series)
		}
		p.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f\t%s\t\n",
			s.Variant, s.Variant.Family(), s.Mean.Microseconds(), s.Median.Microseconds(),
			s.StdDev.Microseconds(), s.NsPerPixel(), result)
	}
	return tw.Flush()
}

// writePlans writes <name>.plan.json for every GPU kernel, describing its
// dispatch over the context's grids.
func writePlans(dir string, ctx *stencilbench.BenchmarkContext) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	outputs := map[string]*stencilbench.PixelGrid{
		"blur": ctx.Output(),
		"gray": ctx.Gray(),
	}
	cfg := ctx.Config()
	params := shader.Params{
		Width:  uint32(cfg.Width),
		Height: uint32(cfg.Height),
		Radius: uint32(cfg.BlurRadius),
	}

	for _, src := range shader.Sources() {
		out, ok := outputs[src.Name]
		if !ok {
			return fmt.Errorf("no output grid for kernel %s", src.Name)
		}
		plan, err := shader.NewPlan(src.Name,
			ctx.Input().Format().TextureFormat(), out.Format().TextureFormat(), params)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, src.Name+".plan.json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return err
		}
		stencilbench.Logger().Debug("stencilbench: wrote kernel plan", "path", path)
	}
	return nil
}

// writeSPIRV compiles every GPU kernel into dir as <name>.spv.
func writeSPIRV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, src := range shader.Sources() {
		words, err := shader.Compile(src.Name)
		if err != nil {
			return fmt.Errorf("compile %s: %w", src.Name, err)
		}
		buf := make([]byte, 0, len(words)*4)
		for _, w := range words {
			buf = binary.LittleEndian.AppendUint32(buf, w)
		}
		path := filepath.Join(dir, src.Name+".spv")
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return err
		}
		stencilbench.Logger().Debug("stencilbench: wrote kernel", "path", path, "words", len(words))
	}
	return nil
}
