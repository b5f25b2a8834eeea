package viewer

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// imageEvent carries a file system change of the source image into the
// main event loop.
type imageEvent struct {
	tcell.EventTime
	op fsnotify.Op
}

// setupWatcher watches the image's directory and posts debounced events
// for changes to the image file itself. Watching the directory instead of
// the file survives editors that replace files via rename.
func (v *Viewer) setupWatcher(screen tcell.Screen) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Graceful degradation - continue without watching
		return
	}
	v.watcher = watcher

	target := filepath.Clean(v.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		v.watcher = nil
		return
	}

	go func() {
		debounce := time.NewTimer(100 * time.Millisecond)
		debounce.Stop()
		var pending fsnotify.Op

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				pending |= event.Op
				debounce.Reset(100 * time.Millisecond)

			case <-debounce.C:
				ev := &imageEvent{op: pending}
				ev.SetEventNow()
				screen.PostEvent(ev)
				pending = 0

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (v *Viewer) handleImageEvent(ev *imageEvent) {
	base := filepath.Base(v.path)
	switch {
	case ev.op&(fsnotify.Remove|fsnotify.Rename) != 0 && ev.op&(fsnotify.Write|fsnotify.Create) == 0:
		v.statusBar.Message = "⚠ " + base + " was removed externally"
		v.blit()
	case ev.op&(fsnotify.Write|fsnotify.Create) != 0:
		img, err := v.reload()
		if err != nil {
			v.statusBar.Message = "⚠ reload failed: " + err.Error()
			v.blit()
			return
		}
		v.img = img
		v.statusBar.Message = "↻ " + base + " (reloaded)"
		v.rerender()
	}
}
