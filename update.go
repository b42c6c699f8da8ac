package main

import (
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	defer g.handlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case Running:
		g.UpdateRunning()
	case ErrorScreen:
		g.UpdateErrorScreen()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) UpdateRunning() {
	// Dev mode hot-reloads the config when anything under data/ changes.
	// The new durations take effect on the next transition; the running
	// state is left alone.
	if g.devModeEnabled && g.configWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		g.scheduler.Configure(g.Config)
	}

	// Scene dots: clicking one jumps the scheduler there. Everything else
	// about the pointer (orbit, zoom) belongs to the rendering side and
	// never reaches the scheduler.
	for _, dot := range g.dotBounds {
		if g.JustClicked(dot.Bounds) {
			g.scheduler.JumpToScene(dot.SceneId)
		}
	}
	if g.devModeEnabled {
		// Number keys jump scenes too, handy without a mouse.
		for id := 0; id < SceneCount && id < 9; id++ {
			if g.JustPressed(ebiten.KeyDigit1 + ebiten.Key(id)) {
				g.scheduler.JumpToScene(id)
			}
		}
	}

	// One tick of virtual time. Order matters: the clock advances first so
	// the scheduler and every generator see the same time value for this
	// frame.
	g.clock.Step(tickSeconds)
	g.scheduler.Step(tickSeconds)
	g.camera.Step(tickSeconds)
	g.orchestrator.Step(g.scheduler.State(), g.clock.Elapsed())

	// Record the capture before anything else can crash this tick, so a
	// crash-triggering state sequence is on disk when it happens.
	g.capture.Append(g.scheduler)
	if g.RecordToFile {
		WriteFile(g.RecordingFile, g.capture.Serialize())
	}

	g.frameIdx++
}

func (g *Gui) UpdateErrorScreen() {
	if g.JustPressed(ebiten.KeyR) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Restart()
	}
}

// handlePanic converts any panic out of the frame callbacks into the error
// screen. A partially built frame risks leaving the renderer's transparency
// caches inconsistent, so the whole view is replaced rather than patched.
func (g *Gui) handlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		g.lastError = err
	} else {
		g.lastError = fmt.Errorf("%v", r)
	}
	if g.scheduler != nil {
		g.scheduler.Shutdown()
	}
	g.state = ErrorScreen
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func ImageRectContainsPt(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}
