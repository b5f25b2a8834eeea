package ascii

import (
	"fmt"
	"strings"
)

const tableGlyphs = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// ColorTableLines renders a demonstration of all 256 palette codes, eight
// per row, each shown in its own color with a sample glyph.
func ColorTableLines() []string {
	glyphs := []rune(tableGlyphs)
	lines := []string{"256-color ANSI escape codes demonstration:", ""}
	var sb strings.Builder
	for c := 0; c < 256; c++ {
		fmt.Fprintf(&sb, "\x1b[38;5;%dm %3d(%c) \x1b[0m", c, c, glyphs[c%len(glyphs)])
		if (c+1)%8 == 0 {
			lines = append(lines, sb.String())
			sb.Reset()
		}
	}
	lines = append(lines, "")
	return lines
}
