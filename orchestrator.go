package main

// Orchestrator runs parallel to the Scheduler and holds the "visual logic"
// side of a frame: which scene instances exist, their per-frame geometry
// updates and the transparency invalidation at transition edges. It never
// mutates TransitionState, it is a pure reader.
//
// Mount rule: a scene is mounted iff it is the current scene or it is the
// previous scene of a running transition. Everything else is dropped,
// which releases its geometry buffers.
type Orchestrator struct {
	scenes           []Scene // indexed by scene id, nil when unmounted
	wasTransitioning bool
}

func NewOrchestrator() (o Orchestrator) {
	o.scenes = make([]Scene, SceneCount)
	return
}

// Step brings the mounted set in line with st and updates every mounted
// scene for this frame's clock value.
func (o *Orchestrator) Step(st TransitionState, now float64) {
	for id := range o.scenes {
		if st.Mounted(id) {
			if o.scenes[id] == nil {
				o.scenes[id] = NewScene(SceneTable[id])
			}
		} else {
			o.scenes[id] = nil
		}
	}

	// The renderer caches premultiplied transparency state per drawable.
	// On both edges of a transition (start and end) that state must be
	// recomputed even where the opacity value happens to be unchanged,
	// otherwise the first blended frame draws with stale alpha.
	edge := st.Transitioning != o.wasTransitioning
	o.wasTransitioning = st.Transitioning

	for id, scene := range o.scenes {
		if scene == nil {
			continue
		}
		blend := EasedOpacity(st, id)
		scene.Step(now, blend, blend)
		if edge {
			scene.Invalidate()
		}
	}
}

// Submit hands every mounted scene's drawables to the renderer.
func (o *Orchestrator) Submit(r *Renderer) {
	for _, scene := range o.scenes {
		if scene == nil {
			continue
		}
		for _, d := range scene.Drawables() {
			r.Submit(d)
		}
	}
}

// MountedCount is a debug readout for the HUD dev line.
func (o *Orchestrator) MountedCount() int {
	n := 0
	for _, scene := range o.scenes {
		if scene != nil {
			n++
		}
	}
	return n
}

// EasedOpacity is the blend weight the render layer actually uses: the
// scheduler's linear ramp shaped by the smoothstep Ease. The outgoing and
// incoming weights still sum to exactly 1.
func EasedOpacity(st TransitionState, sceneId int) float64 {
	if st.Transitioning && sceneId == st.PreviousScene {
		return 1 - Ease(st.Progress)
	}
	if st.Transitioning && sceneId == st.CurrentScene {
		return Ease(st.Progress)
	}
	return st.Opacity(sceneId)
}
