package ascii

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// CharSets holds the built-in glyph ramps, ordered darkest to lightest
// (or the reverse for the inverted ramp). Treat as read-only: a custom
// ramp from the user is combined via NewRampSet, never written back here.
var CharSets = []string{
	" .:-=+*#%@",
	" .'`,^:\";!i~+_-?][}{1)(|\\lI<>rctvxyzuJCOAs238&%$W#@",
	"@%#*+=-:. ",
	" .oO@ ",
}

// NewRampSet returns the ramp collection for a session. A non-empty custom
// ramp replaces the first entry in a fresh slice so the package-level table
// stays untouched.
func NewRampSet(custom string) ([]string, error) {
	ramps := make([]string, len(CharSets))
	copy(ramps, CharSets)
	if custom != "" {
		if err := ValidateRamp(custom); err != nil {
			return nil, err
		}
		ramps[0] = custom
	}
	return ramps, nil
}

// ValidateRamp checks that a glyph ramp is usable: at least two glyphs, each
// occupying exactly one terminal cell. Wide or zero-width runes would break
// column alignment of the rendered frame.
func ValidateRamp(ramp string) error {
	glyphs := []rune(ramp)
	if len(glyphs) < 2 {
		return fmt.Errorf("glyph ramp %q needs at least 2 characters", ramp)
	}
	for _, r := range glyphs {
		if runewidth.RuneWidth(r) != 1 {
			return fmt.Errorf("glyph %q is not one cell wide", string(r))
		}
	}
	return nil
}

// ColorMode selects how each emitted glyph is wrapped with 256-color
// escape sequences.
type ColorMode int

const (
	ColorNone ColorMode = iota
	ColorGrayscale
	ColorRainbow
	ColorBlueToRed
	ColorCustom
	ColorPosterize
)

var colorModeNames = []string{"none", "grayscale", "rainbow", "blue2red", "custom", "posterize"}

// ModeCount is the number of color modes the viewer cycles through.
const ModeCount = 6

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return "none"
	}
	return colorModeNames[m]
}

// ParseColorMode maps a user-supplied mode name to a ColorMode. Unknown
// names are an error; the mode set is closed.
func ParseColorMode(name string) (ColorMode, error) {
	for i, n := range colorModeNames {
		if n == name {
			return ColorMode(i), nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color mode %q (choose from none/grayscale/rainbow/blue2red/custom/posterize)", name)
}

// RainbowGradient is a hand-picked 10-step hue cycle through the xterm
// color cube.
var RainbowGradient = []int{203, 198, 199, 164, 129, 93, 63, 33, 39, 44}

// BlueToRedGradient linearly interpolates palette codes from bright blue
// (21) to bright red (196) in 24 steps. The interpolation is over raw code
// numbers, which walks the color cube diagonally; crude but visually fine
// for a cycling gradient.
var BlueToRedGradient = buildBlueToRed(24)

func buildBlueToRed(steps int) []int {
	const blueCode, redCode = 21, 196
	gradient := make([]int, steps)
	for i := range gradient {
		frac := float64(i) / float64(steps-1)
		code := blueCode + int(frac*float64(redCode-blueCode))
		if code < 0 {
			code = 0
		}
		if code > 255 {
			code = 255
		}
		gradient[i] = code
	}
	return gradient
}

// GrayShade maps a luminance value in [0,255] to one of the 24 grayscale
// palette codes 232..255.
func GrayShade(lum int) int {
	if lum < 0 {
		lum = 0
	}
	if lum > 255 {
		lum = 255
	}
	return 232 + lum*23/255
}

// Dominant-channel codes for the "custom" mode.
const (
	customRed   = 196
	customGreen = 46
	customBlue  = 21
	customBlack = 16
)

// dominantCode picks a palette code from the strongest RGB channel.
// Ties resolve red over green over blue; an all-zero pixel maps to
// near-black.
func dominantCode(r, g, b uint8) int {
	top := r
	if g > top {
		top = g
	}
	if b > top {
		top = b
	}
	switch {
	case top == 0:
		return customBlack
	case top == r:
		return customRed
	case top == g:
		return customGreen
	default:
		return customBlue
	}
}
