// cmd/antsnap/main.go
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/paulmach/orb"
	"golang.org/x/image/draw"

	"go-hex-ants/internal/app"
	"go-hex-ants/internal/config"
	"go-hex-ants/internal/page"
	"go-hex-ants/internal/utils"
	"go-hex-ants/pkg/hexgrid"
	"go-hex-ants/pkg/logger"
	"go-hex-ants/pkg/render"
)

type options struct {
	width    int
	height   int
	frames   int
	every    int
	seed     int64
	out      string
	toggleAt []int
	copy     bool
	config   string
	scale    float64
}

type report struct {
	width, height int
	layout        hexgrid.Layout
	bounds        orb.Bound
	backdropEdges int
	frames        uint64
	stats         app.Stats
	toggles       int
	snapshots     []string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	settings, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{
		Level:       settings.Log.Level,
		Format:      settings.Log.Format,
		OutputPaths: settings.Log.Outputs,
	}); err != nil {
		return err
	}
	defer logger.Sync()

	rep, err := simulate(opts, settings)
	if err != nil {
		return err
	}
	summary := rep.String()
	fmt.Fprint(stdout, summary)
	if opts.copy {
		if err := clipboard.WriteAll(summary); err != nil {
			return fmt.Errorf("copy summary: %w", err)
		}
		fmt.Fprintln(stdout, "summary copied to clipboard")
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	var toggles string
	fs := flag.NewFlagSet("antsnap", flag.ContinueOnError)
	fs.IntVar(&opts.width, "width", 1920, "viewport width in pixels")
	fs.IntVar(&opts.height, "height", 1080, "viewport height in pixels")
	fs.IntVar(&opts.frames, "frames", 600, "frames to simulate")
	fs.IntVar(&opts.every, "every", 0, "write a snapshot every N frames (0 = last frame only)")
	fs.Int64Var(&opts.seed, "seed", 42, "PRNG seed")
	fs.StringVar(&opts.out, "out", "", "directory for PNG snapshots (empty = none)")
	fs.StringVar(&toggles, "toggle-at", "", "comma separated frames at which reduced motion flips")
	fs.BoolVar(&opts.copy, "copy", false, "copy the summary to the clipboard")
	fs.StringVar(&opts.config, "config", "", "path to a YAML settings file")
	fs.Float64Var(&opts.scale, "scale", 1, "snapshot scale factor")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.width <= 0 || opts.height <= 0 {
		return opts, fmt.Errorf("-width and -height must be > 0")
	}
	if opts.frames <= 0 {
		return opts, fmt.Errorf("-frames must be > 0")
	}
	if opts.every < 0 {
		return opts, fmt.Errorf("-every must be >= 0")
	}
	if opts.scale <= 0 {
		return opts, fmt.Errorf("-scale must be > 0")
	}
	at, err := parseFrames(toggles)
	if err != nil {
		return opts, err
	}
	opts.toggleAt = at
	return opts, nil
}

func parseFrames(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var frames []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("-toggle-at: bad frame %q", part)
		}
		frames = append(frames, n)
	}
	return frames, nil
}

// simulate drives a controller on a headless page for opts.frames frames.
func simulate(opts options, settings config.Settings) (*report, error) {
	host := page.NewHeadless(opts.width, opts.height, false)
	appOpts := app.DefaultOptions()
	appOpts.Ants = settings.Animation.Ants
	ants := app.New(host, appOpts, logger.Named("ants"), utils.NewPRNGService(opts.seed))
	ants.Attach()
	defer ants.Detach()

	grid := hexgrid.Build(float64(opts.width), float64(opts.height), appOpts.Pattern)
	layout, _ := hexgrid.Measure(float64(opts.width), float64(opts.height), appOpts.Pattern)
	backdrop := render.NewRasterCanvas(opts.width, opts.height)
	pattern := render.NewBackdrop(backdrop, config.BackdropColor, config.BackdropStrokeWidth)
	pattern.Render(grid)

	if opts.out != "" {
		if err := os.MkdirAll(opts.out, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	rep := &report{width: opts.width, height: opts.height, layout: layout, backdropEdges: pattern.Edges()}
	rep.bounds, _ = grid.Bounds()
	toggles := make(map[int]bool, len(opts.toggleAt))
	for _, f := range opts.toggleAt {
		toggles[f] = true
	}

	for frame := 1; frame <= opts.frames; frame++ {
		if toggles[frame] {
			host.SetReducedMotion(!host.ReducedMotion())
			rep.toggles++
		}
		host.Step()

		if opts.out == "" || !snapshotDue(frame, opts.every, opts.frames) {
			continue
		}
		img := scaled(host.Composite(config.PaperColor, backdrop), opts.scale)
		path := filepath.Join(opts.out, fmt.Sprintf("frame-%05d.png", frame))
		if err := writePNG(path, img); err != nil {
			return nil, err
		}
		rep.snapshots = append(rep.snapshots, path)
	}
	rep.frames = host.Frame()
	rep.stats = ants.Stats()
	return rep, nil
}

func snapshotDue(frame, every, last int) bool {
	if every > 0 {
		return frame%every == 0
	}
	return frame == last
}

func scaled(src *image.RGBA, factor float64) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	w := max(int(float64(b.Dx())*factor), 1)
	h := max(int(float64(b.Dy())*factor), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (r *report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Hex Ants Snapshot ===\n")
	fmt.Fprintf(&b, "viewport=%dx%d scale=%.2f px/unit tile=%.2fx%.2f\n",
		r.width, r.height, r.layout.Scale, r.layout.TileWidth, r.layout.TileHeight)
	fmt.Fprintf(&b, "grid cols=%d rows=%d edges=%d backdrop_edges=%d\n", r.layout.Cols, r.layout.Rows, r.layout.Edges(), r.backdropEdges)
	fmt.Fprintf(&b, "grid bounds=(%.1f,%.1f)-(%.1f,%.1f)\n", r.bounds.Min.X(), r.bounds.Min.Y(), r.bounds.Max.X(), r.bounds.Max.Y())
	fmt.Fprintf(&b, "frames=%d toggles=%d runs=%d state=%s\n", r.frames, r.toggles, r.stats.Sessions, r.stats.Phase)
	if r.stats.Session != "" {
		fmt.Fprintf(&b, "session=%s session_frames=%d resets=%d\n", r.stats.Session, r.stats.Frames, r.stats.Resets)
	}
	fmt.Fprintf(&b, "snapshots=%d\n", len(r.snapshots))
	for _, p := range r.snapshots {
		fmt.Fprintf(&b, "  %s\n", p)
	}
	return b.String()
}
