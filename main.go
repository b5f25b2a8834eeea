package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"asciiview/ascii"
	"asciiview/config"
	"asciiview/viewer"

	"github.com/nfnt/resize"
	"golang.org/x/term"
)

const version = "1.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "asciiview - render images as ASCII art in the terminal\n\n")
	fmt.Fprintf(os.Stderr, "usage: asciiview [flags] <image>\n\n")
	fmt.Fprintf(os.Stderr, "Without -no-tui an interactive viewer opens: arrows adjust scale and\n")
	fmt.Fprintf(os.Stderr, "glyph set, 'c' cycles color modes, 'y' copies, 's' saves, 'q' quits.\n\n")
	flag.PrintDefaults()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	var (
		savePath   = flag.String("o", "", "write the rendered output to a text file (batch mode)")
		scale      = flag.Float64("scale", cfg.Scale, "initial scaling factor")
		chars      = flag.String("chars", cfg.Charset, "custom glyph ramp, darkest to lightest")
		gradient   = flag.String("gradient", cfg.ColorMode, "color mode: none/grayscale/rainbow/blue2red/custom/posterize")
		noTUI      = flag.Bool("no-tui", false, "convert once and print or save, no interactive viewer")
		colorTable = flag.Bool("color-table", false, "print the 256-color table and exit")
		filterName = flag.String("resize-filter", cfg.ResizeFilter, "resize filter: nearest/bilinear/bicubic/lanczos")
		showVer    = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVer {
		fmt.Println("asciiview " + version)
		return nil
	}
	if *colorTable {
		for _, line := range ascii.ColorTableLines() {
			fmt.Println(line)
		}
		return nil
	}

	path := flag.Arg(0)
	if path == "" {
		usage()
		os.Exit(1)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("image file not found: %s", path)
	}

	ramps, err := ascii.NewRampSet(*chars)
	if err != nil {
		return err
	}
	mode, err := ascii.ParseColorMode(*gradient)
	if err != nil {
		return err
	}
	filter, ok := ascii.ParseFilter(*filterName)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: unknown resize filter %q, using lanczos\n", *filterName)
	}

	img, err := ascii.Load(path)
	if err != nil {
		return fmt.Errorf("could not open image %s: %v", path, err)
	}

	if *noTUI {
		return renderOnce(img, ramps[0], *scale, mode, filter, *savePath)
	}

	v := viewer.New(cfg, viewer.Options{
		Path:   path,
		Image:  img,
		Ramps:  ramps,
		Mode:   mode,
		Filter: filter,
		Scale:  *scale,
	})
	return v.Run()
}

// renderOnce is batch mode: a single fit-and-render pass, printed to
// stdout or written to a file.
func renderOnce(img image.Image, ramp string, scale float64, mode ascii.ColorMode, filter resize.InterpolationFunction, savePath string) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols < 1 || rows < 1 {
		// Not a terminal (pipe, redirect); assume a classic 80x24.
		cols, rows = 80, 24
	}

	frame, _, err := ascii.Render(img, ascii.Params{
		Ramp:     ramp,
		Scale:    scale,
		Mode:     mode,
		Filter:   filter,
		Viewport: &ascii.Viewport{Cols: cols, Rows: rows, Reserved: 1},
	})
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := writeFrame(savePath, frame); err != nil {
			// The render itself succeeded; a failed save is reported
			// without failing the run.
			fmt.Fprintf(os.Stderr, "warning: could not save %s: %v\n", savePath, err)
			return nil
		}
		fmt.Printf("Saved ASCII art to: %s\n", savePath)
		return nil
	}

	for _, line := range frame.Lines() {
		fmt.Println(line)
	}
	return nil
}

func writeFrame(path string, frame *ascii.Frame) error {
	var sb strings.Builder
	for _, line := range frame.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
