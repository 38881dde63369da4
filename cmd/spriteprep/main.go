package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"sprite-prep/internal/imaging"
	"sprite-prep/internal/inspect"
	"sprite-prep/internal/pipeline"
	"sprite-prep/internal/removal"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("spriteprep %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		}
	}

	// Progress output goes to stdout; logging stays on stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("SPRITEPREP_LOG_LEVEL") == "debug" {
		log.Printf("spriteprep v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var code int
	switch cmd {
	case "analyze":
		code = runAnalyze(args)
	case "clean":
		code = runClean(args)
	case "crop":
		code = runCrop(args)
	case "rembg":
		code = runRembg(args)
	case "removebg":
		code = runRemovebg(args)
	default:
		fmt.Fprintf(os.Stderr, "spriteprep: unknown command %q\n\n", cmd)
		printUsage(os.Stderr)
		code = 1
	}
	os.Exit(code)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "spriteprep - offline sprite asset cleanup pipeline")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: spriteprep <command> [options] [paths...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  analyze    Print pixel samples, color counts, and alpha statistics")
	fmt.Fprintln(w, "  clean      Clear background regions connected to the image border")
	fmt.Fprintln(w, "  crop       Composite each image through a centered circular mask")
	fmt.Fprintln(w, "  rembg      Remove backgrounds with the local rembg tool")
	fmt.Fprintln(w, "  removebg   Remove backgrounds through the remove.bg API")
	fmt.Fprintln(w, "  version    Print version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'spriteprep <command> -h' for command options.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without paths, commands fall back to the built-in asset list")
	fmt.Fprintln(w, "(coin.png and portal.png in the working directory).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  SPRITEPREP_LOG_LEVEL=debug    Enable debug logging")
}

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// assetsFromPaths wraps bare paths as assets, falling back to the built-in
// asset list when none are given.
func assetsFromPaths(paths []string) []pipeline.Asset {
	if len(paths) == 0 {
		return pipeline.DefaultConfig().Assets
	}
	assets := make([]pipeline.Asset, 0, len(paths))
	for _, p := range paths {
		assets = append(assets, pipeline.Asset{Name: p})
	}
	return assets
}

// resolveAssets builds the asset list for one invocation: the JSON config
// (or the built-in defaults), with positional paths replacing the config's
// asset list and flag values overriding hints and tolerance for every asset.
func resolveAssets(paths []string, configPath string, hints []string, tol *float64) ([]pipeline.Asset, error) {
	cfg := pipeline.DefaultConfig()
	if configPath != "" {
		loaded, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	assets := cfg.Assets
	if len(paths) > 0 {
		assets = assetsFromPaths(paths)
	}
	for i := range assets {
		if len(hints) > 0 {
			assets[i].Hints = hints
		}
		if tol != nil {
			assets[i].Tolerance = tol
		}
	}
	return assets, nil
}

func runClean(args []string) int {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	configPath := fs.String("config", "", "JSON asset config file")
	tol := fs.Float64("tolerance", 0, "override the match tolerance for every asset")
	var hints stringList
	fs.Var(&hints, "hint", "override background hint, hex like #FFFFFF (repeatable)")
	fs.Parse(args)

	// Only treat the tolerance as an override when the flag was actually set,
	// so an untouched default does not clobber per-asset config values.
	var tolOverride *float64
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tolerance" {
			tolOverride = tol
		}
	})

	assets, err := resolveAssets(fs.Args(), *configPath, hints, tolOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spriteprep: %v\n", err)
		return 1
	}

	runner := pipeline.NewRunner(os.Stdout)
	if runner.Clean(assets).Failed() > 0 {
		return 1
	}
	return 0
}

func runCrop(args []string) int {
	fs := flag.NewFlagSet("crop", flag.ExitOnError)
	configPath := fs.String("config", "", "JSON asset config file")
	fs.Parse(args)

	assets, err := resolveAssets(fs.Args(), *configPath, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spriteprep: %v\n", err)
		return 1
	}

	runner := pipeline.NewRunner(os.Stdout)
	if runner.Crop(assets).Failed() > 0 {
		return 1
	}
	return 0
}

func runRembg(args []string) int {
	fs := flag.NewFlagSet("rembg", flag.ExitOnError)
	fs.Parse(args)

	engine, err := removal.NewRembgEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spriteprep: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := pipeline.NewRunner(os.Stdout)
	if runner.Remove(ctx, engine, assetsFromPaths(fs.Args())).Failed() > 0 {
		return 1
	}
	return 0
}

func runRemovebg(args []string) int {
	fs := flag.NewFlagSet("removebg", flag.ExitOnError)
	key := fs.String("key", "", "remove.bg API key (required)")
	fs.Parse(args)

	if *key == "" {
		fmt.Fprintln(os.Stderr, "spriteprep: removebg requires -key")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := pipeline.NewRunner(os.Stdout)
	if runner.Remove(ctx, removal.NewClient(*key), assetsFromPaths(fs.Args())).Failed() > 0 {
		return 1
	}
	return 0
}

func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var at stringList
	fs.Var(&at, "at", "sample the pixel at `x,y` (repeatable)")
	suggest := fs.Bool("suggest", false, "suggest background hints and a tolerance")
	fs.Parse(args)

	points, err := parsePoints(at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spriteprep: %v\n", err)
		return 1
	}

	failed := 0
	for _, a := range assetsFromPaths(fs.Args()) {
		if err := analyzeOne(os.Stdout, a.Name, points, *suggest); err != nil {
			fmt.Printf("Error: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// parsePoints converts repeated "x,y" flag values into sample points.
func parsePoints(specs []string) ([]imaging.LabeledPoint, error) {
	points := make([]imaging.LabeledPoint, 0, len(specs))
	for _, s := range specs {
		xs, ys, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("bad -at value %q, want x,y", s)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("bad -at value %q, want x,y", s)
		}
		points = append(points, imaging.LabeledPoint{X: x, Y: y})
	}
	return points, nil
}

func analyzeOne(w io.Writer, path string, points []imaging.LabeledPoint, suggest bool) error {
	fmt.Fprintf(w, "Analyzing %s...\n", path)

	info, err := imaging.LoadImageInfo(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%dx%d %s, %s, alpha: %t, %d bytes\n",
		info.Width, info.Height, info.Format, info.ColorDepth, info.HasAlpha, info.FileSizeBytes)

	g, err := imaging.Load(path)
	if err != nil {
		return err
	}

	rep := inspect.Inspect(g)
	fmt.Fprintf(w, "Top-Left %dx%d pixels:\n", len(rep.CornerSamples[0]), len(rep.CornerSamples))
	for y, row := range rep.CornerSamples {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, formatRGBA(c))
		}
		fmt.Fprintf(w, "Row %d: %s\n", y, strings.Join(cells, ", "))
	}
	fmt.Fprintf(w, "Distinct colors in row 0: %d\n", rep.RowColorCount)
	first := make([]string, 0, len(rep.RowFirstColors))
	for _, c := range rep.RowFirstColors {
		first = append(first, formatRGBA(c))
	}
	fmt.Fprintf(w, "First row colors: %s\n", strings.Join(first, ", "))
	fmt.Fprintf(w, "Alpha: %d transparent, %d opaque, %d partial\n",
		rep.Alpha.Transparent, rep.Alpha.Opaque, rep.Alpha.Partial)

	if len(points) > 0 {
		multi, err := imaging.SampleColorsMulti(g.Image(), points)
		if err != nil {
			return err
		}
		for _, s := range multi.Samples {
			fmt.Fprintf(w, "Pixel (%d,%d): %s rgba(%d, %d, %d, %d) hsl(%d, %d%%, %d%%)\n",
				s.X, s.Y, s.Color.Hex,
				s.Color.RGBA.R, s.Color.RGBA.G, s.Color.RGBA.B, s.Color.RGBA.A,
				s.Color.HSL.H, s.Color.HSL.S, s.Color.HSL.L)
		}
	}

	if suggest {
		sug, err := inspect.Suggest(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Dominant color: %s\n", sug.DominantColor.Hex())
		if len(sug.Hints) == 0 {
			fmt.Fprintln(w, "Border is fully transparent; no hints to suggest.")
			return nil
		}
		hints := make([]string, 0, len(sug.Hints))
		for _, h := range sug.Hints {
			hints = append(hints, h.Hex())
		}
		fmt.Fprintf(w, "Suggested hints: %s (tolerance %.0f)\n", strings.Join(hints, ", "), sug.Tolerance)
	}
	return nil
}

// formatRGBA renders a pixel as an "(r, g, b, a)" tuple.
func formatRGBA(c imaging.RGBAColor) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
