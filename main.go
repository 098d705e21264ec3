package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/output"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene   string
	width   int
	spp     int
	depth   int
	seed    int64
	format  string
	out     string
	useBVH  bool
	inspect string
	verbose bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.scene, "scene", "normals", "Scene to render (see -list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.Int64Var(&opts.seed, "seed", 42, "Random seed for scene generation, BVH construction and sampling")
	flag.StringVar(&opts.format, "format", "", "Output format: "+strings.Join(output.FormatNames(), ", ")+" (default: from -out extension, else ppm)")
	flag.StringVar(&opts.out, "out", "", "Output file; the -format extension is added when it has none (default: stdout)")
	flag.BoolVar(&opts.useBVH, "bvh", true, "Use a bounding volume hierarchy; false tests every object for every ray")
	flag.StringVar(&opts.inspect, "inspect", "", "Print what the center ray of pixel x,y hits as JSON instead of rendering")
	flag.BoolVar(&opts.verbose, "verbose", false, "Log per-scanline progress")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp(os.Stdout)
		return
	}

	if *list {
		printScenes(os.Stdout)
		return
	}

	logger := renderer.NewDefaultLogger(os.Stderr, opts.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "BVH Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  raytracer -scene=normals > image.ppm")
	fmt.Fprintln(w, "  raytracer -scene=cover -width=400 -spp=50 -out=cover.png")
	fmt.Fprintln(w, "  raytracer -scene=default -inspect=200,112")
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-18s %s\n", info.Name, info.Description)
	}
}

// run builds the scene and either inspects one pixel or renders and writes the image
func run(ctx context.Context, opts options, logger core.Logger) error {
	format, err := resolveFormat(opts.format, opts.out)
	if err != nil {
		return err
	}
	out := outputPath(opts.out, format)
	if out == "" && format.Binary() && isTerminal(os.Stdout) {
		return errors.Errorf("refusing to write %s image to a terminal; use -out or redirect stdout", format)
	}

	doneScene := core.TimeScope(logger, "Scene::new")
	s, err := createScene(opts)
	if err != nil {
		return err
	}
	if err := s.Preprocess(opts.useBVH, core.NewSeededSampler(opts.seed), logger); err != nil {
		return errors.Wrap(err, "preparing scene")
	}
	doneScene()

	doneCamera := core.TimeScope(logger, "Camera::new")
	camera := renderer.NewCamera(s.CameraConfig)
	doneCamera()

	if opts.inspect != "" {
		x, y, err := parseInspect(opts.inspect, camera.Width(), camera.Height())
		if err != nil {
			return err
		}
		return writeJSON(os.Stdout, renderer.Inspect(camera, s.World, x, y))
	}

	logger.Infof("Rendering %q at %dx%d, %d samples per pixel, max depth %d",
		s.Name, camera.Width(), camera.Height(), camera.SamplesPerPixel(), camera.MaxDepth())

	raytracer := renderer.NewRaytracer(camera, s.World, s.Integrator, logger)
	img, stats, err := raytracer.Render(ctx, core.NewSeededSampler(opts.seed))
	if err != nil {
		return err
	}
	logger.Infof("Traced %d samples over %d pixels in %v (%.0f samples/s)",
		stats.TotalSamples, stats.TotalPixels, stats.Duration, stats.SamplesPerSecond())

	return writeImage(out, format, func(w io.Writer) error {
		return output.Encode(w, img, format)
	})
}

// createScene builds the named scene with the command line overrides applied
func createScene(opts options) (*scene.Scene, error) {
	overrides := renderer.CameraConfig{
		Width:           opts.width,
		SamplesPerPixel: opts.spp,
		MaxDepth:        opts.depth,
	}
	return scene.NewScene(opts.scene, opts.seed, overrides)
}

// resolveFormat picks the explicit format, else the output file's extension, else PPM
func resolveFormat(format, out string) (output.Format, error) {
	if format != "" {
		return output.ParseFormat(format)
	}
	if out != "" {
		return output.FormatFromPath(out)
	}
	return output.PPM, nil
}

// outputPath adds the format's extension to an output file named without one
func outputPath(out string, format output.Format) string {
	if out == "" || filepath.Ext(out) != "" {
		return out
	}
	return out + format.Extension()
}

// parseInspect parses "x,y" and checks it against the image size
func parseInspect(value string, width, height int) (int, int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid -inspect %q: want x,y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid -inspect x %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid -inspect y %q", parts[1])
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, errors.Errorf("pixel (%d, %d) outside %dx%d image", x, y, width, height)
	}
	return x, y, nil
}

// writeImage sends the encoded image to the named file, or stdout when path is empty
func writeImage(path string, format output.Format, encode func(io.Writer) error) error {
	if path == "" {
		return encode(os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing %s file %s", format, path)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "encoding inspection result")
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
