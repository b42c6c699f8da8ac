package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		SceneDuration:      10,
		TransitionDuration: 2.5,
		ProgressStep:       0.025,
		StartScene:         0,
	}
}

// advance fast-forwards a scheduler by whole ticks covering the given
// number of seconds.
func advance(s *Scheduler, seconds float64) {
	ticks := int(math.Round(seconds / tickSeconds))
	for range ticks {
		s.Step(tickSeconds)
	}
}

func TestScheduler_StartsSteadyOnStartScene(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	st := s.State()
	assert.Equal(t, 0, st.CurrentScene)
	assert.Equal(t, NoScene, st.PreviousScene)
	assert.False(t, st.Transitioning)
}

func TestScheduler_EndToEndCycle(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())

	// One tick before the scene duration elapses, still steady.
	advance(s, 10-tickSeconds)
	require.False(t, s.State().Transitioning)

	// The advance fires: previous captured, current moved on, progress
	// restarted.
	s.Step(tickSeconds)
	st := s.State()
	require.True(t, st.Transitioning)
	assert.Equal(t, 0, st.PreviousScene)
	assert.Equal(t, 1, st.CurrentScene)
	assert.Less(t, st.Progress, 0.1)

	// After the transition duration the fade is over.
	advance(s, 2.5+2*tickSeconds)
	st = s.State()
	assert.False(t, st.Transitioning)
	assert.Equal(t, NoScene, st.PreviousScene)
	assert.Equal(t, 1, st.CurrentScene)
	assert.Equal(t, 1.0, st.Progress)
}

func TestScheduler_CyclesThroughAllScenesAndWraps(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	for want := 1; want <= SceneCount; want++ {
		advance(s, 10+tickSeconds)
		assert.Equal(t, want%SceneCount, s.State().CurrentScene)
		// Finish the fade before the next advance for clean arithmetic.
		advance(s, 3-tickSeconds)
	}
}

func TestScheduler_OpacitiesSumToOneWhileTransitioning(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	advance(s, 10+tickSeconds)
	require.True(t, s.State().Transitioning)

	for s.State().Transitioning {
		st := s.State()
		sum := st.Opacity(st.CurrentScene) + st.Opacity(st.PreviousScene)
		assert.Equal(t, 1.0, sum)
		eased := EasedOpacity(st, st.CurrentScene) +
			EasedOpacity(st, st.PreviousScene)
		assert.InDelta(t, 1.0, eased, 1e-12)
		s.Step(tickSeconds)
	}
}

func TestScheduler_ProgressMonotoneWithinTransition(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	advance(s, 10+tickSeconds)
	require.True(t, s.State().Transitioning)

	last := s.State().Progress
	for s.State().Transitioning {
		s.Step(tickSeconds)
		assert.GreaterOrEqual(t, s.State().Progress, last)
		last = s.State().Progress
	}
	assert.Equal(t, 1.0, last)

	// The next transition starts from exactly 0 again.
	s.JumpToScene(4)
	assert.Equal(t, 0.0, s.State().Progress)
}

func TestScheduler_ExactlyOneSceneFullyOnWhenSteady(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	advance(s, 13.5)
	st := s.State()
	require.False(t, st.Transitioning)

	fullyOn := 0
	for id := 0; id < SceneCount; id++ {
		switch st.Opacity(id) {
		case 1.0:
			fullyOn++
		case 0.0:
		default:
			t.Fatalf("scene %d has partial opacity %f while steady",
				id, st.Opacity(id))
		}
	}
	assert.Equal(t, 1, fullyOn)
}

func TestScheduler_JumpToScene(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())

	// Valid jump: same capture/advance logic as the automatic timer.
	s.JumpToScene(3)
	st := s.State()
	assert.True(t, st.Transitioning)
	assert.Equal(t, 0, st.PreviousScene)
	assert.Equal(t, 3, st.CurrentScene)
	assert.Equal(t, 0.0, st.Progress)

	// No-op while a transition is running.
	s.JumpToScene(1)
	assert.Equal(t, 3, s.State().CurrentScene)
	assert.Equal(t, 0, s.State().PreviousScene)

	advance(s, 3)
	require.False(t, s.State().Transitioning)

	// No-op when the target is already current.
	s.JumpToScene(3)
	assert.False(t, s.State().Transitioning)

	// No-op on out-of-range ids.
	s.JumpToScene(-1)
	assert.False(t, s.State().Transitioning)
	s.JumpToScene(SceneCount)
	assert.False(t, s.State().Transitioning)
}

func TestScheduler_TransitioningIffPreviousSet(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	for range 4000 {
		s.Step(tickSeconds)
		st := s.State()
		assert.Equal(t, st.Transitioning, st.PreviousScene != NoScene)
	}
}

func TestScheduler_FrameCounterWraps(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	assert.Equal(t, 0, s.Frame())

	// 15 fps against 60 TPS: one frame every 4 ticks.
	advance(s, 4*tickSeconds)
	assert.Equal(t, 1, s.Frame())

	// 60 frames take 4 seconds, then the counter is back at 0.
	advance(s, 4-4*tickSeconds)
	assert.Equal(t, 0, s.Frame())
}

func TestScheduler_ShutdownStopsEverything(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	s.Shutdown()
	advance(s, 60)
	st := s.State()
	assert.Equal(t, 0, st.CurrentScene)
	assert.False(t, st.Transitioning)
	assert.Equal(t, 0, s.Frame())
}

func TestScheduler_ConfigureAppliesNewDurations(t *testing.T) {
	s := NewScheduler(SceneCount, testConfig())
	cfg := testConfig()
	cfg.SceneDuration = 2
	s.Configure(cfg)

	advance(s, 2+tickSeconds)
	assert.True(t, s.State().Transitioning)
}

func TestEase_EndpointsAndMidpoint(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.Equal(t, 0.5, Ease(0.5))
	// Smoothstep is below the line in the first half, above in the second.
	assert.Less(t, Ease(0.25), 0.25)
	assert.Greater(t, Ease(0.75), 0.75)
}
