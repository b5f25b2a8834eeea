package viewer

import (
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"asciiview/ascii"
	"asciiview/clipboardx"
	"asciiview/config"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"
)

// Options carries the initial render parameters into the viewer.
type Options struct {
	Path   string
	Image  image.Image
	Ramps  []string
	Mode   ascii.ColorMode
	Filter resize.InterpolationFunction
	Scale  float64
}

// Viewer is the interactive controller. It owns the render state and is
// the only writer of it; every state-changing key triggers exactly one
// re-render through the same terminal-fit path as the initial draw.
type Viewer struct {
	screen tcell.Screen
	cfg    *config.Config

	path string
	img  image.Image

	ramps  []string
	filter resize.InterpolationFunction

	scale   float64
	rampIdx int
	modeIdx int

	frame    *ascii.Frame
	effScale float64

	statusBar *StatusBar
	watcher   *fsnotify.Watcher

	quit bool
}

func New(cfg *config.Config, opts Options) *Viewer {
	return &Viewer{
		cfg:       cfg,
		path:      opts.Path,
		img:       opts.Image,
		ramps:     opts.Ramps,
		filter:    opts.Filter,
		scale:     opts.Scale,
		modeIdx:   int(opts.Mode),
		statusBar: &StatusBar{Theme: cfg.GetTheme()},
	}
}

func (v *Viewer) mode() ascii.ColorMode { return ascii.ColorMode(v.modeIdx) }

func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	v.screen = screen

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	// An interrupt must restore the terminal exactly like a quit key.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigc; ok {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	if v.cfg.WatchFile && v.path != "" {
		v.setupWatcher(screen)
	}

	// Initial draw runs the same fit/render path as every redraw.
	v.rerender()

	for !v.quit {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.rerender()
		case *tcell.EventKey:
			switch v.applyKey(ev) {
			case actQuit:
				v.quit = true
			case actRender:
				v.rerender()
			case actRedraw:
				v.blit()
			}
		case *tcell.EventInterrupt:
			v.quit = true
		case *imageEvent:
			v.handleImageEvent(ev)
		}
	}

	signal.Stop(sigc)
	close(sigc)
	if v.watcher != nil {
		v.watcher.Close()
	}
	screen.Clear()
	screen.Fini()
	return nil
}

type action int

const (
	actNone action = iota
	actQuit
	actRender
	actRedraw
)

// applyKey mutates the render state for one key event and reports what
// the loop should do. Keys outside the transition table change nothing.
func (v *Viewer) applyKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		v.statusBar.Message = ""
		v.scale += 0.05
		return actRender
	case tcell.KeyDown:
		v.statusBar.Message = ""
		v.scale -= 0.05
		if v.scale < ascii.MinScale {
			v.scale = ascii.MinScale
		}
		return actRender
	case tcell.KeyLeft:
		v.statusBar.Message = ""
		v.rampIdx = (v.rampIdx - 1 + len(v.ramps)) % len(v.ramps)
		return actRender
	case tcell.KeyRight:
		v.statusBar.Message = ""
		v.rampIdx = (v.rampIdx + 1) % len(v.ramps)
		return actRender
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actQuit
		case 'c', 'C':
			v.statusBar.Message = ""
			v.modeIdx = (v.modeIdx + 1) % ascii.ModeCount
			return actRender
		case 'y', 'Y':
			v.copyFrame()
			return actRedraw
		case 's', 'S':
			v.saveFrame()
			return actRedraw
		}
	}
	return actNone
}

// rerender recomputes the frame against the current terminal geometry and
// repaints. One row stays reserved for the status header.
func (v *Viewer) rerender() {
	cols, rows := v.screen.Size()
	frame, eff, err := ascii.Render(v.img, ascii.Params{
		Ramp:     v.ramps[v.rampIdx],
		Scale:    v.scale,
		Mode:     v.mode(),
		Filter:   v.filter,
		Viewport: &ascii.Viewport{Cols: cols, Rows: rows, Reserved: 1},
	})
	if err != nil {
		v.statusBar.Message = "⚠ render failed: " + err.Error()
		v.blit()
		return
	}
	v.frame = frame
	v.effScale = eff
	v.blit()
}

// blit repaints header and cached frame without re-rendering.
func (v *Viewer) blit() {
	v.screen.Clear()
	cols, _ := v.screen.Size()

	v.statusBar.Scale = v.effScale
	v.statusBar.RampIdx = v.rampIdx
	v.statusBar.Mode = v.mode().String()
	v.statusBar.Render(v.screen, 0, cols)

	if v.frame != nil {
		for y := 0; y < v.frame.Height(); y++ {
			for x := 0; x < v.frame.Width(); x++ {
				cell := v.frame.At(x, y)
				style := tcell.StyleDefault
				if cell.Color >= 0 {
					style = style.Foreground(tcell.PaletteColor(cell.Color)).Bold(cell.Bold)
				}
				v.screen.SetContent(x, y+1, cell.Glyph, nil, style)
			}
		}
	}
	v.screen.Show()
}

func (v *Viewer) copyFrame() {
	if v.frame == nil {
		v.statusBar.Message = "nothing rendered yet"
		return
	}
	if clipboardx.Write(v.frame.Text()) {
		v.statusBar.Message = "copied frame to clipboard"
	} else {
		v.statusBar.Message = "⚠ clipboard unavailable"
	}
}

func (v *Viewer) saveFrame() {
	if v.frame == nil {
		v.statusBar.Message = "nothing rendered yet"
		return
	}
	out := v.path + ".txt"
	f, err := os.Create(out)
	if err != nil {
		v.statusBar.Message = "⚠ save failed: " + err.Error()
		return
	}
	defer f.Close()
	for _, line := range v.frame.Lines() {
		if _, err := fmt.Fprintln(f, line); err != nil {
			v.statusBar.Message = "⚠ save failed: " + err.Error()
			return
		}
	}
	v.statusBar.Message = "saved " + out
}

func (v *Viewer) reload() (image.Image, error) {
	return ascii.Load(v.path)
}
