package main

// Scheduler rules
// - The visualizer cycles through the scenes forever: every SceneDuration
// seconds the current scene advances to the next one, wrapping around.
// - An advance starts a crossfade: the old scene fades out while the new one
// fades in, over TransitionDuration seconds.
// - Clicking a scene dot jumps straight to that scene with the same
// crossfade, skipping the wait. Jumping is ignored while a crossfade is
// running and when the target is already the current scene.
// - At most one crossfade runs at any time. The automatic advance is a no-op
// while a crossfade is running; with a 10s period against a 2.5s fade this
// cannot happen, but the guard stays because a config can set the durations
// to anything.
//
// All of this is driven by virtual time: the Gui calls Step(dt) once per
// ebiten tick and the scheduler fires its internal tasks from the
// accumulated time. There are no real timers and no goroutines, which is
// what lets the tests fast-forward hours of scheduling in microseconds.

// NoScene marks the absence of a previous scene outside a transition.
const NoScene = -1

// HudFps is the rate of the HUD frame counter. The Update() loop runs at 60
// TPS (ebitengine's default) but the retro frame readout is meant to tick
// visibly, so it runs at a quarter of that.
const HudFps = 15

// HudFrameWrap makes the frame counter wrap back to 0, once every 4 seconds
// at HudFps.
const HudFrameWrap = 60

// TransitionState is the scheduler's entire externally visible state. It
// has exactly one writer (the scheduler) and many readers (orchestrator,
// scenes, HUD).
//
// Invariants:
// - Transitioning == true exactly when PreviousScene != NoScene.
// - Progress increases monotonically within one transition and is reset to
// 0 when the next transition starts.
type TransitionState struct {
	CurrentScene  int
	PreviousScene int
	Transitioning bool
	Progress      float64
}

// Opacity is the linear blend weight of a scene under this state. During a
// transition the outgoing and incoming weights sum to exactly 1. Scale uses
// the same ramp, so a scene grows in as it fades in.
func (st TransitionState) Opacity(sceneId int) float64 {
	if st.Transitioning && sceneId == st.PreviousScene {
		return 1 - st.Progress
	}
	if st.Transitioning && sceneId == st.CurrentScene {
		return st.Progress
	}
	if sceneId == st.CurrentScene {
		return 1
	}
	return 0
}

// Mounted says whether a scene must currently be drawn at all.
func (st TransitionState) Mounted(sceneId int) bool {
	return sceneId == st.CurrentScene ||
		(st.Transitioning && sceneId == st.PreviousScene)
}

// Ease is the smoothstep curve the render layer applies on top of the
// linear Progress ramp, so the crossfade accelerates and decelerates
// instead of snapping at the endpoints. The scheduler itself only ever
// emits the linear ramp; easing is a presentation choice.
func Ease(p float64) float64 {
	return p * p * (3 - 2*p)
}

// task is one named recurring virtual timer inside the scheduler. It fires
// every interval seconds of accumulated Step time and can be cancelled
// independently of the others.
type task struct {
	interval float64
	elapsed  float64
	active   bool
}

func (t *task) start(interval float64) {
	t.interval = interval
	t.elapsed = 0
	t.active = true
}

func (t *task) stop() {
	t.active = false
}

// timerEpsilon absorbs float accumulation drift, so a task whose interval
// is an exact multiple of the step size fires on the boundary tick instead
// of one tick late.
const timerEpsilon = 1e-9

// step accumulates dt and returns how many times the task fired. A huge dt
// fires the task multiple times, which keeps long fast-forwards exact.
func (t *task) step(dt float64) int {
	if !t.active {
		return 0
	}
	t.elapsed += dt
	fires := 0
	for t.elapsed >= t.interval-timerEpsilon {
		t.elapsed -= t.interval
		fires++
	}
	return fires
}

type Scheduler struct {
	numScenes      int
	state          TransitionState
	frame          int
	sceneDuration  float64
	transitionTick float64
	progressStep   float64

	// The three named tasks: automatic scene advance, transition progress
	// ramp and the HUD frame counter.
	advanceTask  task
	progressTask task
	frameTask    task
}

func NewScheduler(numScenes int, cfg Config) *Scheduler {
	Assert(numScenes > 0)
	s := &Scheduler{}
	s.numScenes = numScenes
	s.sceneDuration = cfg.SceneDuration
	s.transitionTick = cfg.TransitionDuration * cfg.ProgressStep
	s.progressStep = cfg.ProgressStep
	s.state = TransitionState{
		CurrentScene:  cfg.StartScene,
		PreviousScene: NoScene,
	}
	s.advanceTask.start(s.sceneDuration)
	s.frameTask.start(1.0 / HudFps)
	return s
}

// Step advances the scheduler by dt seconds of virtual time.
func (s *Scheduler) Step(dt float64) {
	Assert(dt >= 0)

	for range s.frameTask.step(dt) {
		s.frame = (s.frame + 1) % HudFrameWrap
	}

	for range s.advanceTask.step(dt) {
		if s.state.Transitioning {
			// At most one crossfade at a time, see the scheduler rules above.
			continue
		}
		s.beginTransition((s.state.CurrentScene + 1) % s.numScenes)
	}

	for range s.progressTask.step(dt) {
		if !s.state.Transitioning {
			break
		}
		s.state.Progress += s.progressStep
		if s.state.Progress >= 1 {
			s.state.Progress = 1
			s.state.Transitioning = false
			s.state.PreviousScene = NoScene
			s.progressTask.stop()
		}
	}
}

// JumpToScene is the manual override: crossfade straight to the requested
// scene. It is a silent no-op while a transition is running, when the
// target is already current and when the id is out of range, because the
// scene dots are a pure UI affordance with no contract to violate.
func (s *Scheduler) JumpToScene(sceneId int) {
	if s.state.Transitioning {
		return
	}
	if sceneId == s.state.CurrentScene {
		return
	}
	if sceneId < 0 || sceneId >= s.numScenes {
		return
	}
	s.beginTransition(sceneId)
}

func (s *Scheduler) beginTransition(target int) {
	s.state.PreviousScene = s.state.CurrentScene
	s.state.CurrentScene = target
	s.state.Transitioning = true
	s.state.Progress = 0
	s.progressTask.start(s.transitionTick)
}

// Configure applies new durations to a running scheduler without touching
// its state. A transition already in flight keeps its old tick; the new
// values take effect from the next one.
func (s *Scheduler) Configure(cfg Config) {
	s.sceneDuration = cfg.SceneDuration
	s.transitionTick = cfg.TransitionDuration * cfg.ProgressStep
	s.progressStep = cfg.ProgressStep
	s.advanceTask.interval = s.sceneDuration
}

func (s *Scheduler) State() TransitionState {
	return s.state
}

// Frame is the HUD frame counter: 0..59, stepped at HudFps, so it wraps
// every 4 seconds.
func (s *Scheduler) Frame() int {
	return s.frame
}

// Shutdown cancels all tasks. After this no amount of Step time fires
// anything, so a torn-down Gui cannot be mutated by leftover callbacks.
func (s *Scheduler) Shutdown() {
	s.advanceTask.stop()
	s.progressTask.stop()
	s.frameTask.stop()
}
