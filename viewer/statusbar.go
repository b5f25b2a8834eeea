package viewer

import (
	"fmt"

	"asciiview/config"

	"github.com/gdamore/tcell/v2"
)

// StatusBar is the single header row above the rendered frame.
type StatusBar struct {
	Scale   float64 // effective scale after terminal fit
	RampIdx int
	Mode    string
	Message string // temporary status message
	Theme   *config.ColorScheme
}

const statusHints = "↑↓ scale │ ←→ charset │ c color │ y copy │ s save │ q quit"

func (s *StatusBar) Render(screen tcell.Screen, y, width int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	modeStyle := tcell.StyleDefault.Background(theme.StatusModeBg).Foreground(tcell.ColorBlack).Bold(true)

	// Clear the line
	for cx := 0; cx < width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := 0
	chip := " VIEW "
	for _, ch := range chip {
		if col < width {
			screen.SetContent(col, y, ch, nil, modeStyle)
			col++
		}
	}
	if col < width {
		screen.SetContent(col, y, ' ', nil, style)
		col++
	}

	// A temporary message replaces the parameter readout
	left := fmt.Sprintf("Scale=%.2f │ CharSet=%d │ Color=%s", s.Scale, s.RampIdx, s.Mode)
	if s.Message != "" {
		left = s.Message
	}
	for _, ch := range left {
		if col < width {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
	}

	hintRunes := []rune(" " + statusHints + " ")
	hintStart := width - len(hintRunes)
	if hintStart > col+2 {
		for i, ch := range hintRunes {
			screen.SetContent(hintStart+i, y, ch, nil, style)
		}
	}
}
