package ascii

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/nfnt/resize"
	"github.com/soniakeys/quant/median"
)

// Cell is one rendered glyph. Color is an xterm 256-color code, or -1 for
// an unwrapped glyph.
type Cell struct {
	Glyph rune
	Color int
	Bold  bool
}

// Frame is one complete rendering of a source image. Frames are built
// fresh on every Render call and never mutated afterwards.
type Frame struct {
	cells [][]Cell
}

func (f *Frame) Width() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

func (f *Frame) Height() int { return len(f.cells) }

func (f *Frame) At(x, y int) Cell { return f.cells[y][x] }

// Lines serializes the frame to one string per row, glyphs wrapped in
// foreground-then-reset escape sequences where a color mode applied.
func (f *Frame) Lines() []string {
	lines := make([]string, len(f.cells))
	var sb strings.Builder
	for y, row := range f.cells {
		sb.Reset()
		sb.Grow(len(row) * 16)
		for _, c := range row {
			switch {
			case c.Color < 0:
				sb.WriteRune(c.Glyph)
			case c.Bold:
				fmt.Fprintf(&sb, "\x1b[1;38;5;%dm%c\x1b[0m", c.Color, c.Glyph)
			default:
				fmt.Fprintf(&sb, "\x1b[38;5;%dm%c\x1b[0m", c.Color, c.Glyph)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// Text returns the frame as plain glyphs with no escape sequences, one
// newline-terminated row each. Used for clipboard export.
func (f *Frame) Text() string {
	var sb strings.Builder
	for _, row := range f.cells {
		for _, c := range row {
			sb.WriteRune(c.Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Params bundles the inputs of one render pass.
type Params struct {
	Ramp   string
	Scale  float64
	Mode   ColorMode
	Filter resize.InterpolationFunction
	// Viewport, when non-nil, enables terminal-fit scaling before the
	// output size is computed.
	Viewport *Viewport
}

// Render converts an image into a glyph frame. It returns the frame and
// the effective scale actually used (smaller than Params.Scale when the
// viewport forced a shrink).
func Render(img image.Image, p Params) (*Frame, float64, error) {
	if img == nil {
		return nil, 0, fmt.Errorf("render: nil image")
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW < 1 || srcH < 1 {
		return nil, 0, fmt.Errorf("render: empty image (%dx%d)", srcW, srcH)
	}
	ramp := []rune(p.Ramp)
	if len(ramp) == 0 {
		return nil, 0, fmt.Errorf("render: empty glyph ramp")
	}
	if p.Scale <= 0 {
		return nil, 0, fmt.Errorf("render: non-positive scale %g", p.Scale)
	}

	scale := p.Scale
	if p.Viewport != nil {
		scale = FitScale(srcW, srcH, scale, *p.Viewport)
	}
	outW, outH := OutputSize(srcW, srcH, scale)

	resized := toRGBA(resize.Resize(uint(outW), uint(outH), img, p.Filter))

	var codes []int
	if p.Mode == ColorPosterize {
		codes = posterizeCodes(resized)
	}

	cells := make([][]Cell, outH)
	cycle := 0
	for y := 0; y < outH; y++ {
		row := make([]Cell, outW)
		for x := 0; x < outW; x++ {
			px := resized.RGBAAt(x, y)
			lum := (int(px.R)*299 + int(px.G)*587 + int(px.B)*114) / 1000
			glyph := ramp[lum*(len(ramp)-1)/255]

			cell := Cell{Glyph: glyph, Color: -1}
			switch p.Mode {
			case ColorGrayscale:
				cell.Color = GrayShade(lum)
			case ColorRainbow:
				cell.Color = RainbowGradient[cycle%len(RainbowGradient)]
				cell.Bold = true
				cycle++
			case ColorBlueToRed:
				cell.Color = BlueToRedGradient[cycle%len(BlueToRedGradient)]
				cell.Bold = true
				cycle++
			case ColorCustom:
				cell.Color = dominantCode(px.R, px.G, px.B)
				cell.Bold = true
			case ColorPosterize:
				cell.Color = codes[y*outW+x]
				cell.Bold = true
			}
			row[x] = cell
		}
		cells[y] = row
	}

	return &Frame{cells: cells}, scale, nil
}

const posterizeColors = 16

// posterizeCodes quantizes the frame to a small palette with median-cut
// and maps every pixel to the nearest 256-color code of its palette entry.
// Returned slice is row-major, one code per pixel.
func posterizeCodes(rgba *image.RGBA) []int {
	q := median.Quantizer(posterizeColors)
	paletted := q.Paletted(rgba)
	draw.Draw(paletted, rgba.Bounds(), rgba, image.Point{}, draw.Over)

	paletteCodes := make([]int, len(paletted.Palette))
	for i, c := range paletted.Palette {
		r, g, b, _ := c.RGBA()
		paletteCodes[i] = RGBTo256(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	codes := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			codes[y*w+x] = paletteCodes[paletted.ColorIndexAt(x, y)]
		}
	}
	return codes
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
