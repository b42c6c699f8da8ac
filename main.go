package main

import (
	"embed"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is a unique label for the visual experience a viewer is
// presented with. It must change whenever the scene set, the scheduler
// behavior or the capture format changes, so a recorded capture can always
// be matched to the build that produced it.
const ReleaseVersion = 3

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	Running GuiState = iota
	ErrorScreen
)

// Gui owns everything: the shared clock, the scheduler, the orchestrator,
// the renderer and the HUD bookkeeping. Ebiten calls Update and Draw; all
// state mutation happens on that single callback thread, so the
// single-writer rule for TransitionState and AnimationClock holds by
// construction.
type Gui struct {
	Config
	FSys           FS
	embedded       bool
	state          GuiState
	clock          AnimationClock
	scheduler      *Scheduler
	orchestrator   Orchestrator
	camera         Camera
	renderer       *Renderer
	hudFont        font.Face
	frameIdx       int64
	capture        Capture
	configWatcher  FolderWatcher
	devModeEnabled bool
	lastError      error

	pressedKeys     []ebiten.Key
	justPressedKeys []ebiten.Key

	// Scene dot hitboxes, remembered during Draw so Update can react when
	// they are clicked.
	dotBounds []DotBound

	screenW float64
	screenH float64
}

// tickSeconds is the virtual-time step of one Update call. Ebitengine runs
// Update at 60 TPS; deriving the clock from the tick count instead of the
// wall clock keeps a run reproducible tick for tick.
const tickSeconds = 1.0 / 60

func main() {
	var g Gui

	if len(os.Args) == 2 && os.Args[1] == "developer-mode-enabled" {
		g.devModeEnabled = true
	}

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
		g.embedded = true
	} else {
		g.FSys = os.DirFS(".").(FS)
		if g.devModeEnabled {
			g.configWatcher.Folder = "data"
			// Initialize the watcher with the current timestamps so the
			// first frame doesn't count as a change.
			g.configWatcher.FolderContentsChanged()
		}
	}

	g.LoadGuiData()
	g.Restart()

	err := ebiten.RunGame(&g)
	Check(err)
}

// Restart builds a fresh session: a new clock, scheduler, orchestrator and
// capture. Used at boot and as the reload affordance of the error screen.
func (g *Gui) Restart() {
	if g.scheduler != nil {
		g.scheduler.Shutdown()
	}
	g.clock = AnimationClock{}
	g.scheduler = NewScheduler(SceneCount, g.Config)
	g.orchestrator = NewOrchestrator()
	g.camera = NewCamera()
	g.renderer = NewRenderer()
	g.frameIdx = 0
	g.capture = NewCapture(g.Config)
	g.lastError = nil
	g.state = Running
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.Monitor().Size()
	size := min(width, height) * 8 / 10
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Sacred Voxel Recursion")
}
