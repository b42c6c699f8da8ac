package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steady(scene int) TransitionState {
	return TransitionState{CurrentScene: scene, PreviousScene: NoScene}
}

func fading(from int, to int, progress float64) TransitionState {
	return TransitionState{
		CurrentScene:  to,
		PreviousScene: from,
		Transitioning: true,
		Progress:      progress,
	}
}

func TestOrchestrator_MountRule(t *testing.T) {
	o := NewOrchestrator()

	o.Step(steady(0), 0)
	assert.NotNil(t, o.scenes[0])
	for id := 1; id < SceneCount; id++ {
		assert.Nil(t, o.scenes[id])
	}

	// During a fade both sides are mounted.
	o.Step(fading(0, 3, 0.5), 0.1)
	assert.NotNil(t, o.scenes[0])
	assert.NotNil(t, o.scenes[3])
	assert.Equal(t, 2, o.MountedCount())

	// When the fade ends the outgoing scene is dropped, and with it its
	// geometry buffers.
	o.Step(steady(3), 0.2)
	assert.Nil(t, o.scenes[0])
	assert.NotNil(t, o.scenes[3])
	assert.Equal(t, 1, o.MountedCount())
}

func TestOrchestrator_InvalidatesOnBothTransitionEdges(t *testing.T) {
	o := NewOrchestrator()
	o.Step(steady(0), 0)

	// Settle the caches: after colors() ran, nothing is dirty.
	for _, d := range o.scenes[0].Drawables() {
		d.colors()
		require.False(t, d.dirty)
	}

	// Edge false->true: every mounted drawable is invalidated, even ones
	// whose opacity value did not change this frame.
	o.Step(fading(0, 1, 0), 0.1)
	for _, scene := range o.scenes {
		if scene == nil {
			continue
		}
		for _, d := range scene.Drawables() {
			assert.True(t, d.dirty)
		}
	}

	// Settle mid-fade, then check the true->false edge too.
	o.Step(fading(0, 1, 0.9), 0.2)
	for _, d := range o.scenes[1].Drawables() {
		d.colors()
	}
	o.Step(steady(1), 0.3)
	for _, d := range o.scenes[1].Drawables() {
		assert.True(t, d.dirty)
	}
}

func TestOrchestrator_AppliesEasedBlend(t *testing.T) {
	o := NewOrchestrator()
	st := fading(0, 1, 0.25)
	o.Step(st, 0)

	// The drawables carry the eased weight, not the raw linear progress.
	want := Ease(0.25)
	for _, d := range o.scenes[1].Drawables() {
		// PlanesScene layers multiply their own oscillation on top, so
		// only the non-plane scenes give the weight back directly.
		assert.InDelta(t, want, d.Opacity(), 1e-9)
	}
}

func TestEasedOpacity_MatchesLinearAtRest(t *testing.T) {
	st := steady(2)
	for id := 0; id < SceneCount; id++ {
		assert.Equal(t, st.Opacity(id), EasedOpacity(st, id))
	}
}
